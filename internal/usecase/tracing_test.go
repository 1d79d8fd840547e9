package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/totegamma/logistics-backend/internal/domain"
)

var errStorage = errors.New("connection reset")

// brokenPartyRepo fails every listing and write.
type brokenPartyRepo struct {
	*mockPartyRepo
}

func (b brokenPartyRepo) ListParties(ctx context.Context, page domain.Page) ([]domain.Party, int64, error) {
	return nil, 0, errStorage
}

func (b brokenPartyRepo) CreateParty(ctx context.Context, party domain.Party) (domain.Party, error) {
	return domain.Party{}, errStorage
}

func (b brokenPartyRepo) ListContacts(ctx context.Context, locationID string) ([]domain.Contact, error) {
	return nil, errStorage
}

func (b brokenPartyRepo) UpdateLocation(ctx context.Context, location domain.Location) (domain.Location, error) {
	return domain.Location{}, errStorage
}

var (
	recorderOnce sync.Once
	recorder     *tracetest.SpanRecorder
)

// recordSpans installs a recording provider. The global provider only
// accepts its first delegate, so every test shares one recorder.
func recordSpans(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	recorderOnce.Do(func() {
		recorder = tracetest.NewSpanRecorder()
		otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))
	})
	return recorder
}

func lastSpan(t *testing.T, r *tracetest.SpanRecorder, name string) sdktrace.ReadOnlySpan {
	t.Helper()
	ended := r.Ended()
	for i := len(ended) - 1; i >= 0; i-- {
		if ended[i].Name() == name {
			return ended[i]
		}
	}
	require.FailNow(t, "span not ended", name)
	return nil
}

func TestPartyUsecaseSpansRecordErrors(t *testing.T) {
	spans := recordSpans(t)

	mock := newMockPartyRepo(domain.VendorTree)
	mock.parties["V1"] = domain.Party{ID: "V1", Name: "Meratus", Code: "MRT"}
	mock.locations["L1"] = domain.Location{ID: "L1", PartyID: "V1", City: "Surabaya"}
	uc := NewPartyUsecase(domain.VendorTree, brokenPartyRepo{mock}, testEffects(nil, nil))
	ctx := context.Background()

	tests := []struct {
		span string
		call func() error
		want error
	}{
		{"Vendor.Usecase.List", func() error {
			_, _, err := uc.List(ctx, domain.Page{})
			return err
		}, errStorage},
		{"Vendor.Usecase.Get", func() error {
			_, err := uc.Get(ctx, "V404")
			return err
		}, domain.ErrNotFound},
		{"Vendor.Usecase.Create", func() error {
			_, err := uc.Create(ctx, domain.PartyCreate{Name: "Samudera", Code: "SMD"})
			return err
		}, errStorage},
		{"Vendor.Usecase.GetLocation", func() error {
			_, err := uc.GetLocation(ctx, "V2", "L1")
			return err
		}, domain.ErrNotFound},
		{"Vendor.Usecase.UpdateLocation", func() error {
			_, err := uc.UpdateLocation(ctx, "V1", "L1", domain.LocationUpdate{City: domain.Some("Gresik")})
			return err
		}, errStorage},
		{"Vendor.Usecase.ListContacts", func() error {
			_, err := uc.ListContacts(ctx, "V1", "L1")
			return err
		}, errStorage},
		{"Vendor.Usecase.CreateContact", func() error {
			_, err := uc.CreateContact(ctx, "V1", "L404", domain.ContactCreate{ContactName: "Rina", PhoneNumber: "0812"})
			return err
		}, domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.span, func(t *testing.T) {
			err := tt.call()
			require.ErrorIs(t, err, tt.want)

			span := lastSpan(t, spans, tt.span)
			require.Len(t, span.Events(), 1)
			event := span.Events()[0]
			assert.Equal(t, "exception", event.Name)

			var message string
			for _, attr := range event.Attributes {
				if attr.Key == "exception.message" {
					message = attr.Value.AsString()
				}
			}
			assert.Equal(t, err.Error(), message)
		})
	}
}

func TestPartyUsecaseSpanWithoutErrorHasNoEvents(t *testing.T) {
	spans := recordSpans(t)

	mock := newMockPartyRepo(domain.CustomerTree)
	mock.parties["C1"] = domain.Party{ID: "C1", Name: "Acme", Code: "ACM"}
	uc := NewPartyUsecase(domain.CustomerTree, mock, testEffects(nil, nil))

	_, err := uc.ListLocations(context.Background(), "C1")
	require.NoError(t, err)

	span := lastSpan(t, spans, "Customer.Usecase.ListLocations")
	assert.Empty(t, span.Events())
}
