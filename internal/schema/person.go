package schema

import "github.com/deppfellow/person-api/internal/validation"

// HairColor is a closed, case-sensitive set of hair colors.
//
// Membership is enforced by the `oneof` validator tag on the fields that
// use it, so "Brown" or "bronw" are rejected, not coerced.
type HairColor string

const (
	HairColorWhite  HairColor = "white"
	HairColorBrown  HairColor = "brown"
	HairColorBlack  HairColor = "black"
	HairColorBlonde HairColor = "blonde"
	HairColorRed    HairColor = "red"
)

// Location describes where a person lives. All fields are required.
type Location struct {
	City    string `json:"city" validate:"required,min=1,max=50"`
	State   string `json:"state" validate:"required,min=1,max=50"`
	Country string `json:"country" validate:"required,min=1,max=50"`
}

// Validate applies the struct tag rules.
func (l *Location) Validate() error {
	return validation.Struct(l)
}

// PersonBase holds the fields shared by the input (Person) and output
// (PersonOut) shapes.
//
// HairColor and IsMarried are pointers so that "absent" is representable:
// a nil pointer means the client never sent the field, and it serializes
// as an explicit JSON null on output.
type PersonBase struct {
	FirstName string     `json:"first_name" validate:"required,min=1,max=50"`
	LastName  string     `json:"last_name" validate:"required,min=1,max=50"`
	Age       int        `json:"age" validate:"required,gt=0,lte=115"`
	HairColor *HairColor `json:"hair_color" validate:"omitempty,oneof=white brown black blonde red"`
	IsMarried *bool      `json:"is_married"`
}

// Person is the input-only shape: PersonBase plus a password.
//
// The password is accepted and validated but never echoed back; responses
// use PersonOut instead.
type Person struct {
	PersonBase
	Password string `json:"password" validate:"required,min=8"`
}

// Validate applies the struct tag rules, including the embedded
// PersonBase fields.
func (p *Person) Validate() error {
	return validation.Struct(p)
}

// PersonOut is the output-only projection of a Person: structurally
// PersonBase with no password field.
//
// hair_color and is_married are serialized as explicit null when unset,
// so the output always carries the full field set.
type PersonOut struct {
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Age       int        `json:"age"`
	HairColor *HairColor `json:"hair_color"`
	IsMarried *bool      `json:"is_married"`
}

// Out projects a Person into its response shape, dropping the password.
//
// This is an explicit projection function rather than a subtype relation:
// the only way a Person reaches a response is through here, which is what
// guarantees the password can never leak.
func (p *Person) Out() PersonOut {
	return PersonOut{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Age:       p.Age,
		HairColor: p.HairColor,
		IsMarried: p.IsMarried,
	}
}
