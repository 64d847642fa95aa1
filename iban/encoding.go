package iban

import (
	"database/sql/driver"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

// Text encodings emit the paper form, binary and storage encodings emit the
// electronic form. Every decoder accepts either form.
//
// For storage, the zero value maps to NULL and back.

func (i Iban) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

func (i *Iban) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i Iban) MarshalBinary() ([]byte, error) { return []byte(i.Electronic()), nil }

func (i *Iban) UnmarshalBinary(data []byte) error { return i.UnmarshalText(data) }

// Value implements driver.Valuer.
func (i Iban) Value() (driver.Value, error) {
	if i.IsZero() {
		return nil, nil
	}
	return i.Electronic(), nil
}

// Scan implements sql.Scanner.
func (i *Iban) Scan(src any) error {
	s, ok, err := scanString(src)
	if err != nil || !ok {
		*i = Iban{}
		return err
	}
	return i.UnmarshalText([]byte(s))
}

// TextValue implements pgtype.TextValuer.
func (i Iban) TextValue() (pgtype.Text, error) {
	if i.IsZero() {
		return pgtype.Text{}, nil
	}
	return pgtype.Text{String: i.Electronic(), Valid: true}, nil
}

// ScanText implements pgtype.TextScanner.
func (i *Iban) ScanText(v pgtype.Text) error {
	if !v.Valid {
		*i = Iban{}
		return nil
	}
	return i.UnmarshalText([]byte(v.String))
}

func (b BasicAddress) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

func (b *BasicAddress) UnmarshalText(text []byte) error {
	v, err := ParseBasic(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

func (b BasicAddress) MarshalBinary() ([]byte, error) { return []byte(b.Electronic()), nil }

func (b *BasicAddress) UnmarshalBinary(data []byte) error { return b.UnmarshalText(data) }

// Value implements driver.Valuer.
func (b BasicAddress) Value() (driver.Value, error) {
	if b.IsZero() {
		return nil, nil
	}
	return b.Electronic(), nil
}

// Scan implements sql.Scanner.
func (b *BasicAddress) Scan(src any) error {
	s, ok, err := scanString(src)
	if err != nil || !ok {
		*b = BasicAddress{}
		return err
	}
	return b.UnmarshalText([]byte(s))
}

// TextValue implements pgtype.TextValuer.
func (b BasicAddress) TextValue() (pgtype.Text, error) {
	if b.IsZero() {
		return pgtype.Text{}, nil
	}
	return pgtype.Text{String: b.Electronic(), Valid: true}, nil
}

// ScanText implements pgtype.TextScanner.
func (b *BasicAddress) ScanText(v pgtype.Text) error {
	if !v.Valid {
		*b = BasicAddress{}
		return nil
	}
	return b.UnmarshalText([]byte(v.String))
}

// scanString reports ok=false for NULL.
func scanString(src any) (string, bool, error) {
	switch v := src.(type) {
	case nil:
		return "", false, nil
	case string:
		return v, true, nil
	case []byte:
		return string(v), true, nil
	default:
		return "", false, fmt.Errorf("iban: cannot scan %T", src)
	}
}
