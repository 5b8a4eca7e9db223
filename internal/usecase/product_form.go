package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/go-playground/validator/v10"

	"github.com/jmvillota/product-console/internal/client"
	"github.com/jmvillota/product-console/internal/models"
	"github.com/jmvillota/product-console/pkg/dates"
	"github.com/jmvillota/product-console/pkg/reactive"
)

const redirectAfterLoadError = 2 * time.Second

// Form field names, matching the wire/input names.
const (
	FieldID           = "id"
	FieldName         = "name"
	FieldDescription  = "description"
	FieldLogo         = "logo"
	FieldDateRelease  = "date_release"
	FieldDateRevision = "date_revision"
)

// FormValues is the raw form state. Dates are input strings here; they
// only become models.Date when a product is built for the gateway.
type FormValues struct {
	ID           string `json:"id" validate:"required,min=3,max=10"`
	Name         string `json:"name" validate:"required,min=5,max=100"`
	Description  string `json:"description" validate:"required,min=10,max=200"`
	Logo         string `json:"logo" validate:"required,logo_url"`
	DateRelease  string `json:"date_release" validate:"required"`
	DateRevision string `json:"date_revision" validate:"required"`
}

// ProductForm drives the create/edit product screen: synchronous field
// validation on every change, the debounced id uniqueness check in
// create mode, the revision-date derivation, and save/load against the
// gateway. Mode is decided once at construction: a non-empty productID
// means edit mode (id field frozen, record loaded, no uniqueness
// check).
type ProductForm struct {
	mu sync.Mutex

	scope    *reactive.Scope
	gateway  client.ProductAPI
	nav      Navigator
	validate *validator.Validate
	idCheck  *IDValidator

	editMode  bool
	currentID string

	values  FormValues
	touched map[string]bool

	fieldErrors  *reactive.Cell[map[string]FieldError]
	idExists     *reactive.Cell[bool]
	submitting   *reactive.Cell[bool]
	errorMessage *reactive.Cell[string]
	apiErrors    *reactive.Cell[[]models.ValidationError]
}

func NewProductForm(gateway client.ProductAPI, nav Navigator, productID string) *ProductForm {
	scope := reactive.NewScope()
	f := &ProductForm{
		scope:        scope,
		gateway:      gateway,
		nav:          nav,
		validate:     newValidator(),
		editMode:     productID != "",
		currentID:    productID,
		touched:      make(map[string]bool),
		fieldErrors:  reactive.NewCell(map[string]FieldError{}),
		idExists:     reactive.NewCell(false),
		submitting:   reactive.NewCell(false),
		errorMessage: reactive.NewCell(""),
		apiErrors:    reactive.NewCell([]models.ValidationError(nil)),
	}
	if !f.editMode {
		f.idCheck = NewIDValidator(gateway, "")
		scope.OnClose(f.idCheck.Stop)
	}
	f.runValidation()
	return f
}

func (f *ProductForm) IsEditMode() bool { return f.editMode }

// Close tears the form down: pending debounce dispatches and the
// load-error redirect timer stop firing.
func (f *ProductForm) Close() { f.scope.Close() }

// SetID is ignored in edit mode, where the id is immutable. In create
// mode it re-validates immediately and schedules the uniqueness check.
func (f *ProductForm) SetID(ctx context.Context, value string) {
	if f.editMode {
		return
	}
	f.setValue(FieldID, func(v *FormValues) { v.ID = value })

	if value == "" {
		f.idExists.Set(false)
		return
	}
	f.idCheck.Check(ctx, value, func(exists bool) {
		if f.scope.Closed() {
			return
		}
		f.idExists.Set(exists)
	})
}

func (f *ProductForm) SetName(value string) {
	f.setValue(FieldName, func(v *FormValues) { v.Name = value })
}

func (f *ProductForm) SetDescription(value string) {
	f.setValue(FieldDescription, func(v *FormValues) { v.Description = value })
}

func (f *ProductForm) SetLogo(value string) {
	f.setValue(FieldLogo, func(v *FormValues) { v.Logo = value })
}

// SetDateRelease also derives the revision date: release plus one year,
// patched in directly so the derivation cannot feed back on itself. An
// empty or unparseable release leaves the revision untouched.
func (f *ProductForm) SetDateRelease(value string) {
	f.setValue(FieldDateRelease, func(v *FormValues) {
		v.DateRelease = value
		if value == "" {
			return
		}
		if release, ok := dates.Parse(value); ok {
			v.DateRevision = dates.FormatForInput(dates.AddYears(release, 1))
		}
	})
}

func (f *ProductForm) setValue(field string, apply func(*FormValues)) {
	f.mu.Lock()
	apply(&f.values)
	f.touched[field] = true
	f.mu.Unlock()
	f.runValidation()
}

// runValidation re-evaluates the sync constraints over the whole form.
func (f *ProductForm) runValidation() {
	f.mu.Lock()
	values := f.values
	f.mu.Unlock()

	errs := map[string]FieldError{}
	if err := f.validate.Struct(values); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				if _, seen := errs[fe.Field()]; !seen {
					errs[fe.Field()] = FieldError{Tag: fe.Tag(), Param: fe.Param()}
				}
			}
		}
	}
	f.fieldErrors.Set(errs)
}

// Values returns the raw form state, disabled fields included.
func (f *ProductForm) Values() FormValues {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

func (f *ProductForm) Touched(field string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.touched[field]
}

// MarkAllTouched flips every field to touched so validation messages
// render.
func (f *ProductForm) MarkAllTouched() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, field := range []string{FieldID, FieldName, FieldDescription, FieldLogo, FieldDateRelease, FieldDateRevision} {
		f.touched[field] = true
	}
}

func (f *ProductForm) fieldError(field string) FieldError {
	if field == FieldID && f.idExists.Get() {
		if _, hasSync := f.fieldErrors.Get()[field]; !hasSync {
			return FieldError{Tag: "id_exists"}
		}
	}
	return f.fieldErrors.Get()[field]
}

// HasFieldError reports whether field is invalid and has been
// interacted with, i.e. whether its message should render.
func (f *ProductForm) HasFieldError(field string) bool {
	return f.fieldError(field).Tag != "" && f.Touched(field)
}

// FieldMessage returns the user-facing message for a field's current
// error, or "" when the field is valid.
func (f *ProductForm) FieldMessage(field string) string {
	return fieldMessage(f.fieldError(field))
}

func (f *ProductForm) invalid() bool {
	return len(f.fieldErrors.Get()) > 0 || f.idExists.Get()
}

func (f *ProductForm) Submitting() *reactive.Cell[bool]     { return f.submitting }
func (f *ProductForm) ErrorMessage() *reactive.Cell[string] { return f.errorMessage }
func (f *ProductForm) APIValidationErrors() *reactive.Cell[[]models.ValidationError] {
	return f.apiErrors
}

// HasAPIFieldError reports whether the last save left server-side
// validation detail for a field.
func (f *ProductForm) HasAPIFieldError(field string) bool {
	for _, ve := range f.apiErrors.Get() {
		if ve.Property == field {
			return true
		}
	}
	return false
}

// APIFieldMessages lists the server-side constraint messages for a
// field.
func (f *ProductForm) APIFieldMessages(field string) []string {
	for _, ve := range f.apiErrors.Get() {
		if ve.Property == field {
			messages := make([]string, 0, len(ve.Constraints))
			for _, msg := range ve.Constraints {
				messages = append(messages, msg)
			}
			return messages
		}
	}
	return nil
}

func (f *ProductForm) clearErrors() {
	f.errorMessage.Set("")
	f.apiErrors.Set(nil)
}

// Load fetches the record in edit mode and populates the form, dates
// reformatted to the input layout. On failure the screen is terminal:
// the error renders, and after a fixed delay the user is sent back to
// the list. Closing the form first cancels the redirect.
func (f *ProductForm) Load(ctx context.Context) {
	if !f.editMode {
		return
	}

	product, err := f.gateway.GetByID(ctx, f.currentID)
	if err != nil {
		log.Errorw(ctx, "failed to load product", "id", f.currentID, "error", err)
		f.errorMessage.Set("failed to load product")

		timer := time.AfterFunc(redirectAfterLoadError, func() {
			if f.scope.Closed() {
				return
			}
			f.nav.Navigate(ProductsRoute)
		})
		f.scope.OnClose(func() { timer.Stop() })
		return
	}

	f.mu.Lock()
	f.values = FormValues{
		ID:           product.ID,
		Name:         product.Name,
		Description:  product.Description,
		Logo:         product.Logo,
		DateRelease:  dates.FormatForInput(product.DateRelease.Time),
		DateRevision: dates.FormatForInput(product.DateRevision.Time),
	}
	f.mu.Unlock()
	f.runValidation()
}

// Submit validates and saves. A submission already in flight makes this
// a no-op; an invalid form marks every field touched and stops before
// the gateway is involved. On success navigation away clears the screen
// (the submitting flag intentionally stays set); on failure the form
// stays populated with the error inline so the user can correct and
// retry.
func (f *ProductForm) Submit(ctx context.Context) {
	if f.submitting.Get() {
		return
	}

	if f.invalid() {
		f.MarkAllTouched()
		return
	}

	f.submitting.Set(true)
	f.clearErrors()

	product := f.buildProduct()
	var err error
	if f.editMode && f.currentID != "" {
		_, err = f.gateway.Update(ctx, f.currentID, product)
	} else {
		// Edit mode with no id cannot address a record; create.
		_, err = f.gateway.Create(ctx, product)
	}

	if err != nil {
		log.Errorw(ctx, "failed to save product", "id", product.ID, "edit_mode", f.editMode, "error", err)
		f.submitting.Set(false)
		message := err.Error()
		if message == "" {
			message = "failed to save product"
		}
		f.errorMessage.Set(message)
		var apiErr *models.APIError
		if errors.As(err, &apiErr) {
			f.apiErrors.Set(apiErr.ValidationErrors)
		}
		return
	}

	log.Infow(ctx, "product saved", "id", product.ID, "edit_mode", f.editMode)
	f.nav.Navigate(ProductsRoute)
}

func (f *ProductForm) buildProduct() models.Product {
	f.mu.Lock()
	raw := f.values
	f.mu.Unlock()

	release, _ := models.ParseDate(raw.DateRelease)
	revision, _ := models.ParseDate(raw.DateRevision)
	return models.Product{
		ID:           raw.ID,
		Name:         raw.Name,
		Description:  raw.Description,
		Logo:         raw.Logo,
		DateRelease:  release,
		DateRevision: revision,
	}
}

// Reset discards in-progress edits: edit mode reloads the record,
// create mode clears everything.
func (f *ProductForm) Reset(ctx context.Context) {
	if f.editMode {
		f.Load(ctx)
		return
	}

	f.mu.Lock()
	f.values = FormValues{}
	f.touched = make(map[string]bool)
	f.mu.Unlock()
	f.idExists.Set(false)
	f.clearErrors()
	f.runValidation()
}
