package enrich

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTranslationStore struct {
	locales      []string
	translations map[string]string // entityType/entityID/locale -> name
	localesErr   error
	lookupErr    error
}

func (s *fakeTranslationStore) GetTranslation(_ context.Context, entityType, entityID, locale string) (string, error) {
	if s.lookupErr != nil {
		return "", s.lookupErr
	}
	name, ok := s.translations[entityType+"/"+entityID+"/"+locale]
	if !ok {
		return "", sql.ErrNoRows
	}
	return name, nil
}

func (s *fakeTranslationStore) ListTranslationLocales(_ context.Context) ([]string, error) {
	if s.localesErr != nil {
		return nil, s.localesErr
	}
	return s.locales, nil
}

func swahiliStore() *fakeTranslationStore {
	return &fakeTranslationStore{
		locales: []string{"de", "sw"},
		translations: map[string]string{
			"location/A/sw": "Kituo Kikuu",
			"location/C/sw": "Soko Kuu",
			"trip/T1/sw":    "Njia ya Kwanza",
		},
	}
}

func TestLocaleEnricherOverlaysTranslations(t *testing.T) {
	snapshot := testSnapshot()
	trip, _ := snapshot.Trip("T1")
	itineraries := testItineraries(trip, 0, 2)

	err := NewLocaleEnricher(swahiliStore()).Enrich(context.Background(), snapshot, itineraries, "sw")
	require.NoError(t, err)

	display := itineraries[0].Legs[0].Display
	require.NotNil(t, display)
	assert.Equal(t, "Njia ya Kwanza", display.TripLabel)
	assert.Equal(t, "Kituo Kikuu", display.BoardingName)
	assert.Equal(t, "Soko Kuu", display.AlightingName)
	assert.NotEmpty(t, display.Geometry, "geometry comes from the snapshot pass")
}

func TestLocaleEnricherMatchesRegionalVariant(t *testing.T) {
	snapshot := testSnapshot()
	trip, _ := snapshot.Trip("T1")
	itineraries := testItineraries(trip, 0, 2)

	err := NewLocaleEnricher(swahiliStore()).Enrich(context.Background(), snapshot, itineraries, "sw-TZ")
	require.NoError(t, err)

	assert.Equal(t, "Kituo Kikuu", itineraries[0].Legs[0].Display.BoardingName)
}

func TestLocaleEnricherMissingTranslationKeepsDefault(t *testing.T) {
	snapshot := testSnapshot()
	trip, _ := snapshot.Trip("T1")
	// B has no Swahili name in the store.
	itineraries := testItineraries(trip, 1, 2)

	err := NewLocaleEnricher(swahiliStore()).Enrich(context.Background(), snapshot, itineraries, "sw")
	require.NoError(t, err)

	display := itineraries[0].Legs[0].Display
	assert.Equal(t, "Baobab Street", display.BoardingName)
	assert.Equal(t, "Soko Kuu", display.AlightingName)
}

func TestLocaleEnricherUnknownLocaleKeepsDefaults(t *testing.T) {
	snapshot := testSnapshot()
	trip, _ := snapshot.Trip("T1")

	for _, locale := range []string{"", "ja", "not a locale"} {
		itineraries := testItineraries(trip, 0, 2)

		err := NewLocaleEnricher(swahiliStore()).Enrich(context.Background(), snapshot, itineraries, locale)
		require.NoError(t, err, "locale %q", locale)
		assert.Equal(t, "Alpha Terminal", itineraries[0].Legs[0].Display.BoardingName, "locale %q", locale)
	}
}

func TestLocaleEnricherPropagatesStoreErrors(t *testing.T) {
	snapshot := testSnapshot()
	trip, _ := snapshot.Trip("T1")
	storeErr := errors.New("database locked")

	itineraries := testItineraries(trip, 0, 2)
	err := NewLocaleEnricher(&fakeTranslationStore{localesErr: storeErr}).
		Enrich(context.Background(), snapshot, itineraries, "sw")
	assert.ErrorIs(t, err, storeErr)

	store := swahiliStore()
	store.lookupErr = storeErr
	itineraries = testItineraries(trip, 0, 2)
	err = NewLocaleEnricher(store).Enrich(context.Background(), snapshot, itineraries, "sw")
	assert.ErrorIs(t, err, storeErr)
}
