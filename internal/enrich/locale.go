package enrich

import (
	"context"
	"database/sql"
	"errors"

	"golang.org/x/text/language"

	"wayfinder.gobus.org/internal/models"
	"wayfinder.gobus.org/internal/schedule"
	"wayfinder.gobus.org/scheduledb"
)

// TranslationStore is the read interface the locale enricher needs. It is
// satisfied by *scheduledb.Queries.
type TranslationStore interface {
	GetTranslation(ctx context.Context, entityType, entityID, locale string) (string, error)
	ListTranslationLocales(ctx context.Context) ([]string, error)
}

// LocaleEnricher layers translated display names over the snapshot defaults.
// The requested locale is matched against the locales present in the store
// with BCP 47 matching, so a request for "sw-TZ" finds "sw" translations.
// Entities without a translation keep their default names.
type LocaleEnricher struct {
	base  SnapshotEnricher
	store TranslationStore
}

// NewLocaleEnricher creates an enricher reading translations from store.
func NewLocaleEnricher(store TranslationStore) *LocaleEnricher {
	return &LocaleEnricher{store: store}
}

func (e *LocaleEnricher) Enrich(ctx context.Context, snapshot *schedule.Snapshot, itineraries []models.Itinerary, locale string) error {
	if err := e.base.Enrich(ctx, snapshot, itineraries, locale); err != nil {
		return err
	}
	if locale == "" || e.store == nil {
		return nil
	}

	matched, ok, err := e.matchLocale(ctx, locale)
	if err != nil || !ok {
		return err
	}

	for i := range itineraries {
		for j := range itineraries[i].Legs {
			leg := &itineraries[i].Legs[j]
			display := leg.Display

			if err := e.translate(ctx, matched, scheduledb.EntityTrip, leg.Trip.ID, &display.TripLabel); err != nil {
				return err
			}
			if err := e.translate(ctx, matched, scheduledb.EntityLocation, leg.BoardingLocationID(), &display.BoardingName); err != nil {
				return err
			}
			if err := e.translate(ctx, matched, scheduledb.EntityLocation, leg.AlightingLocationID(), &display.AlightingName); err != nil {
				return err
			}
		}
	}
	return nil
}

// matchLocale resolves the requested locale to one of the store's locales.
// ok is false when the request is unparseable or nothing matches; neither is
// an error, the defaults simply stand.
func (e *LocaleEnricher) matchLocale(ctx context.Context, requested string) (string, bool, error) {
	available, err := e.store.ListTranslationLocales(ctx)
	if err != nil {
		return "", false, err
	}
	if len(available) == 0 {
		return "", false, nil
	}

	tag, err := language.Parse(requested)
	if err != nil {
		return "", false, nil
	}

	supported := make([]language.Tag, 0, len(available))
	locales := make([]string, 0, len(available))
	for _, locale := range available {
		parsed, err := language.Parse(locale)
		if err != nil {
			continue
		}
		supported = append(supported, parsed)
		locales = append(locales, locale)
	}
	if len(supported) == 0 {
		return "", false, nil
	}

	matcher := language.NewMatcher(supported)
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return "", false, nil
	}
	return locales[index], true, nil
}

func (e *LocaleEnricher) translate(ctx context.Context, locale, entityType, entityID string, target *string) error {
	name, err := e.store.GetTranslation(ctx, entityType, entityID, locale)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}
	*target = name
	return nil
}
