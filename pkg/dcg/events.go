package dcg

import (
	"context"
	"time"

	"github.com/yesoreyeram/dcgo/pkg/observer"
	"github.com/yesoreyeram/dcgo/pkg/store"
	"github.com/yesoreyeram/dcgo/pkg/symbol"
)

// notify fills in the fields common to every event (type, instance ID,
// timestamp) and forwards to the observer manager, a no-op if e has none.
func (e *Engine) notify(evt observer.Event) {
	if e.obs == nil || !e.obs.HasObservers() {
		return
	}
	evt.InstanceID = e.instanceID.String()
	evt.Timestamp = time.Now()
	e.obs.Notify(context.Background(), evt)
}

func (e *Engine) notifyForceStart(loc symbol.Location, kind store.NodeKind) {
	e.notify(observer.Event{Type: observer.EventForceStart, Status: observer.StatusStarted, Location: loc.String(), NodeKind: kind.String()})
}

func (e *Engine) notifyForceEnd(loc symbol.Location, kind store.NodeKind, start time.Time, changed bool, err error) {
	e.notify(observer.Event{
		Type:        observer.EventForceEnd,
		Status:      statusOf(err),
		Location:    loc.String(),
		NodeKind:    kind.String(),
		StartTime:   start,
		ElapsedTime: time.Since(start),
		Changed:     changed,
		Error:       err,
	})
}

func (e *Engine) notifyProduceStart(loc symbol.Location, kind store.NodeKind) {
	e.notify(observer.Event{Type: observer.EventProduceStart, Status: observer.StatusStarted, Location: loc.String(), NodeKind: kind.String()})
}

func (e *Engine) notifyProduceEnd(loc symbol.Location, kind store.NodeKind, start time.Time, err error) {
	evtType := observer.EventProduceSuccess
	if err != nil {
		evtType = observer.EventProduceFailure
	}
	e.notify(observer.Event{
		Type:        evtType,
		Status:      statusOf(err),
		Location:    loc.String(),
		NodeKind:    kind.String(),
		StartTime:   start,
		ElapsedTime: time.Since(start),
		Error:       err,
	})
}

func (e *Engine) notifyChangePropagateStart(loc symbol.Location) {
	e.notify(observer.Event{Type: observer.EventChangePropagateStart, Status: observer.StatusStarted, Location: loc.String()})
}

func (e *Engine) notifyChangePropagateEnd(loc symbol.Location, start time.Time, changed bool, err error) {
	e.notify(observer.Event{
		Type:        observer.EventChangePropagateEnd,
		Status:      statusOf(err),
		Location:    loc.String(),
		StartTime:   start,
		ElapsedTime: time.Since(start),
		Changed:     changed,
		Error:       err,
	})
}

func (e *Engine) notifyDirty(effect store.EffectKind, loc symbol.Location) {
	evtType := observer.EventDirtyObserve
	if effect == store.Allocate {
		evtType = observer.EventDirtyAlloc
	}
	e.notify(observer.Event{Type: evtType, Status: observer.StatusCompleted, Location: loc.String()})
}

func statusOf(err error) observer.ExecutionStatus {
	if err != nil {
		return observer.StatusFailure
	}
	return observer.StatusSuccess
}
