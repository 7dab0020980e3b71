package validation

import (
	"reflect"
	"strings"

	"github.com/deppfellow/person-api/internal/errs"
)

// locationTags maps struct tag keys to the parameter location they imply,
// in lookup order. A field bound from the path carries `param`, a query
// parameter carries `query`, and so on; plain `json` fields live in the
// body, which is also the default when no transport tag is present.
var locationTags = []struct {
	tag      string
	location errs.ParamLocation
}{
	{"param", errs.LocationPath},
	{"query", errs.LocationQuery},
	{"form", errs.LocationForm},
	{"header", errs.LocationHeader},
	{"json", errs.LocationBody},
}

// fieldLocation resolves the parameter location of a validator failure.
//
// namespace is validator's StructNamespace, e.g.
// "UpdatePersonRequest.Person.PersonBase.FirstName". The root element is
// the payload type itself; the rest is walked through the struct's fields
// (embedded structs included) down to the leaf, whose transport tag
// decides the location.
func fieldLocation(payload Validatable, namespace string) errs.ParamLocation {
	parts := strings.Split(namespace, ".")
	if len(parts) < 2 {
		return errs.LocationBody
	}

	t := derefType(reflect.TypeOf(payload))
	var leaf reflect.StructField
	for _, part := range parts[1:] {
		if t.Kind() != reflect.Struct {
			return errs.LocationBody
		}
		field, ok := t.FieldByName(part)
		if !ok {
			return errs.LocationBody
		}
		leaf = field
		t = derefType(field.Type)
	}

	return tagLocation(leaf)
}

// numericParamField finds the payload's numeric transport-bound field, if
// it has exactly one.
//
// Echo reports a failed path/query/form numeric parse as a bare strconv
// error with no field name attached. The request types here bind at most
// one numeric parameter outside the body, so when exactly one candidate
// exists the failure is attributable to it. Nested structs are not
// searched: path/query/form values always live on the top-level request
// type.
func numericParamField(payload Validatable) (errs.ParamLocation, string, bool) {
	t := derefType(reflect.TypeOf(payload))
	if t.Kind() != reflect.Struct {
		return errs.LocationBody, "", false
	}

	var (
		location errs.ParamLocation
		name     string
		found    int
	)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !isNumericKind(derefType(field.Type).Kind()) {
			continue
		}
		for _, lt := range locationTags {
			if lt.location == errs.LocationBody {
				continue
			}
			tagName := strings.SplitN(field.Tag.Get(lt.tag), ",", 2)[0]
			if tagName != "" && tagName != "-" {
				location = lt.location
				name = tagName
				found++
				break
			}
		}
	}

	if found != 1 {
		return errs.LocationBody, "", false
	}
	return location, name, true
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// hasHeaderTags reports whether any top-level field of the payload binds
// from a request header.
func hasHeaderTags(payload Validatable) bool {
	t := derefType(reflect.TypeOf(payload))
	if t.Kind() != reflect.Struct {
		return false
	}

	for i := 0; i < t.NumField(); i++ {
		if tag := t.Field(i).Tag.Get("header"); tag != "" && tag != "-" {
			return true
		}
	}
	return false
}

// tagLocation picks the location implied by a field's transport tags.
func tagLocation(field reflect.StructField) errs.ParamLocation {
	for _, lt := range locationTags {
		if tag := field.Tag.Get(lt.tag); tag != "" && tag != "-" {
			return lt.location
		}
	}
	return errs.LocationBody
}

func derefType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}
