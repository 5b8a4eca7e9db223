package usecase

import (
	"context"
	"time"

	log "github.com/carousell/ct-go/pkg/logger/log_context"

	"github.com/jmvillota/product-console/internal/client"
	"github.com/jmvillota/product-console/pkg/reactive"
)

const idCheckQuiescence = 400 * time.Millisecond

// IDValidator is the async uniqueness check on the product id. Input is
// debounced over a fixed quiet window with duplicate values suppressed;
// an in-flight request is never cancelled, so a slow response may still
// land after a newer keystroke.
type IDValidator struct {
	gateway   client.ProductAPI
	debouncer *reactive.Debouncer
	// currentID exempts a record's own id from the check. The form
	// only attaches this validator in create mode where currentID is
	// empty, so the guard only matters if the validator is reused in
	// an edit context.
	currentID string
}

func NewIDValidator(gateway client.ProductAPI, currentID string) *IDValidator {
	return &IDValidator{
		gateway:   gateway,
		debouncer: reactive.NewDebouncer(idCheckQuiescence),
		currentID: currentID,
	}
}

// Check resolves whether id is already taken and reports via report.
// Empty input and the record's own id resolve valid immediately without
// touching the gateway. Transport failures fail open: an inconclusive
// check never blocks the user.
func (v *IDValidator) Check(ctx context.Context, id string, report func(exists bool)) {
	if id == "" || (v.currentID != "" && id == v.currentID) {
		report(false)
		return
	}

	v.debouncer.Trigger(id, func(value string) {
		exists, err := v.gateway.VerifyID(ctx, value)
		if err != nil {
			log.Warnw(ctx, "id verification failed, treating id as available",
				"id", value,
				"error", err,
			)
			report(false)
			return
		}
		report(exists)
	})
}

// Stop cancels any pending dispatch.
func (v *IDValidator) Stop() {
	v.debouncer.Stop()
}
