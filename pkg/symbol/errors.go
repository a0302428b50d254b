package symbol

import "fmt"

// ErrIncompatibleProjection creates an error for projecting the wrong half
// of a symbol (e.g. taking the left projection of a non-pair symbol).
func ErrIncompatibleProjection(kind string) error {
	return fmt.Errorf("symbol: cannot take %s projection of a non-pair symbol", kind)
}

// ErrUnknownSymbolKind creates an error for a symbol variant the caller did
// not expect.
func ErrUnknownSymbolKind(kind symbolKind) error {
	return fmt.Errorf("symbol: unknown kind %d", kind)
}
