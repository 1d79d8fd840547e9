package rest

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/totegamma/logistics-backend/internal/domain"
)

const defaultPageSize = 20

var dateType = reflect.TypeFor[Date]()

// Date is a calendar day written as YYYY-MM-DD.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return &json.UnmarshalTypeError{Value: "string " + strconv.Quote(s), Type: dateType}
	}
	d.Time = t
	return nil
}

func (d *Date) ptr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

// ---- contracts

type portCreateRequest struct {
	PortName    string `json:"portName" validate:"required"`
	PortCountry string `json:"portCountry" validate:"required"`
}

type portUpdateRequest struct {
	PortName    domain.Optional[string] `json:"portName" validate:"omitempty,min=1"`
	PortCountry domain.Optional[string] `json:"portCountry" validate:"omitempty,min=1"`
	IsActive    domain.Optional[bool]   `json:"isActive"`
}

type vesselCreateRequest struct {
	VesselName    string `json:"vesselName" validate:"required"`
	VoyageNumber  string `json:"voyageNumber" validate:"required"`
	ETD           *Date  `json:"etd"`
	ClosingReefer *Date  `json:"closingReefer"`
}

type vesselUpdateRequest struct {
	VesselName    domain.Optional[string] `json:"vesselName" validate:"omitempty,min=1"`
	VoyageNumber  domain.Optional[string] `json:"voyageNumber" validate:"omitempty,min=1"`
	ETD           domain.Optional[*Date]  `json:"etd"`
	ClosingReefer domain.Optional[*Date]  `json:"closingReefer"`
	IsActive      domain.Optional[bool]   `json:"isActive"`
}

// Party bodies are keyed by tree (customerName, vendorCode); bindParty
// maps them onto these shared names.
type partyCreateRequest struct {
	Name string  `json:"name" validate:"required"`
	Code string  `json:"code" validate:"required"`
	NPWP *string `json:"npwp"`
}

type partyUpdateRequest struct {
	Name     domain.Optional[string]  `json:"name" validate:"omitempty,min=1"`
	Code     domain.Optional[string]  `json:"code" validate:"omitempty,min=1"`
	NPWP     domain.Optional[*string] `json:"npwp"`
	IsActive domain.Optional[bool]    `json:"isActive"`
}

type locationCreateRequest struct {
	AddressLine1 string  `json:"addressLine1" validate:"required"`
	AddressLine2 *string `json:"addressLine2"`
	AddressLine3 *string `json:"addressLine3"`
	City         string  `json:"city" validate:"required"`
	Province     string  `json:"province" validate:"required"`
	Country      string  `json:"country" validate:"required"`
	PostalCode   *string `json:"postalCode"`
}

type locationUpdateRequest struct {
	AddressLine1 domain.Optional[string]  `json:"addressLine1" validate:"omitempty,min=1"`
	AddressLine2 domain.Optional[*string] `json:"addressLine2"`
	AddressLine3 domain.Optional[*string] `json:"addressLine3"`
	City         domain.Optional[string]  `json:"city" validate:"omitempty,min=1"`
	Province     domain.Optional[string]  `json:"province" validate:"omitempty,min=1"`
	Country      domain.Optional[string]  `json:"country" validate:"omitempty,min=1"`
	PostalCode   domain.Optional[*string] `json:"postalCode"`
	IsActive     domain.Optional[bool]    `json:"isActive"`
}

type contactCreateRequest struct {
	ContactName string  `json:"contactName" validate:"required"`
	PhoneNumber string  `json:"phoneNumber" validate:"required"`
	Email       *string `json:"email" validate:"omitempty,email"`
}

type contactUpdateRequest struct {
	ContactName domain.Optional[string]  `json:"contactName" validate:"omitempty,min=1"`
	PhoneNumber domain.Optional[string]  `json:"phoneNumber" validate:"omitempty,min=1"`
	Email       domain.Optional[*string] `json:"email" validate:"omitempty,email"`
	IsActive    domain.Optional[bool]    `json:"isActive"`
}

// ---- validation

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})

	v.RegisterCustomTypeFunc(
		func(field reflect.Value) any {
			if o, ok := field.Interface().(interface{ Pointer() any }); ok {
				return o.Pointer()
			}
			return nil
		},
		domain.Optional[string]{},
		domain.Optional[*string]{},
		domain.Optional[bool]{},
		domain.Optional[*Date]{},
	)

	return v
}

// fieldErrors converts validator output into client-facing details.
// rename maps struct field names to the names the client sent.
func fieldErrors(err error, rename func(string) string) error {
	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) {
		return err
	}

	fields := make([]domain.FieldError, 0, len(invalid))
	for _, fe := range invalid {
		name := fe.Field()
		if rename != nil {
			name = rename(name)
		}
		fields = append(fields, domain.FieldError{Field: name, Message: describeTag(fe)})
	}
	return domain.Validation(fields...)
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must not be empty"
	case "email":
		return "must be a valid email address"
	case "uuid":
		return "must be a valid UUID"
	default:
		return "failed " + fe.Tag() + " validation"
	}
}

func (h *Handler) validateStruct(dst any, rename func(string) string) error {
	if err := h.validate.Struct(dst); err != nil {
		return fieldErrors(err, rename)
	}
	return nil
}

// decodeBody reads a JSON body into dst. Unknown fields are ignored.
func decodeBody(c echo.Context, dst any) error {
	return decodeErr(json.NewDecoder(c.Request().Body).Decode(dst), nil)
}

// decodeErr turns a decoding failure into a validation error.
func decodeErr(err error, rename func(string) string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, io.EOF) {
		return domain.Validation(domain.FieldError{Field: "body", Message: "request body is required"})
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		field := typeErr.Field
		if rename != nil {
			field = rename(field)
		}
		return domain.Validation(domain.FieldError{Field: field, Message: typeMessage(typeErr)})
	}

	return domain.Validation(domain.FieldError{Field: "body", Message: err.Error()})
}

func (h *Handler) bind(c echo.Context, dst any) error {
	if err := decodeBody(c, dst); err != nil {
		return err
	}
	return h.validateStruct(dst, nil)
}

// bindParty binds a party body whose name and code keys carry the tree
// prefix (customerName, vendorCode) onto the shared request shape.
func (h *Handler) bindParty(c echo.Context, tree domain.PartyTree, dst any) error {
	var raw map[string]json.RawMessage
	if err := decodeBody(c, &raw); err != nil {
		return err
	}

	shared := make(map[string]json.RawMessage, len(raw))
	for key, value := range raw {
		switch key {
		case tree.Prefix + "Name":
			shared["name"] = value
		case tree.Prefix + "Code":
			shared["code"] = value
		case "npwp", "isActive":
			shared[key] = value
		}
	}

	b, err := json.Marshal(shared)
	if err != nil {
		return err
	}

	rename := partyFieldName(tree)
	if err := decodeErr(json.Unmarshal(b, dst), rename); err != nil {
		return err
	}
	return h.validateStruct(dst, rename)
}

func partyFieldName(tree domain.PartyTree) func(string) string {
	return func(field string) string {
		switch field {
		case "name":
			return tree.Prefix + "Name"
		case "code":
			return tree.Prefix + "Code"
		default:
			return field
		}
	}
}

func typeMessage(err *json.UnmarshalTypeError) string {
	t := err.Type
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch {
	case err.Value == "null":
		return "must not be null"
	case t == dateType:
		return "must be a date in YYYY-MM-DD format"
	default:
		return "must be of type " + jsonType(t)
	}
}

func jsonType(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}

// ---- path and query

// pathIDs reads the named path parameters, all of which must be UUIDs.
// Every malformed parameter is reported, in the order given.
func pathIDs(c echo.Context, names ...string) ([]string, error) {
	ids := make([]string, len(names))
	var fields []domain.FieldError
	for i, name := range names {
		id, err := uuid.Parse(c.Param(name))
		if err != nil {
			fields = append(fields, domain.FieldError{Field: name, Message: "must be a valid UUID"})
			continue
		}
		ids[i] = id.String()
	}
	if len(fields) > 0 {
		return nil, domain.Validation(fields...)
	}
	return ids, nil
}

func pathID(c echo.Context, name string) (string, error) {
	ids, err := pathIDs(c, name)
	if err != nil {
		return "", err
	}
	return ids[0], nil
}

// page reads the optional page and pageSize query parameters.
func (h *Handler) page(c echo.Context) (domain.Page, error) {
	var page domain.Page
	var fields []domain.FieldError

	positive := func(name string) int {
		raw := c.QueryParam(name)
		if raw == "" {
			return 0
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			fields = append(fields, domain.FieldError{Field: name, Message: "must be a positive integer"})
			return 0
		}
		return n
	}

	page.Number = positive("page")
	page.Size = positive("pageSize")
	if len(fields) > 0 {
		return domain.Page{}, domain.Validation(fields...)
	}

	if page.Number > 0 && page.Size == 0 {
		page.Size = defaultPageSize
	}
	if page.Size > 0 && page.Number == 0 {
		page.Number = 1
	}
	if page.Size > h.config.MaxPageSize {
		page.Size = h.config.MaxPageSize
	}
	if page.Enabled() && page.Number-1 > math.MaxInt/page.Size {
		return domain.Page{}, domain.Validation(domain.FieldError{Field: "page", Message: "is too large"})
	}
	return page, nil
}
