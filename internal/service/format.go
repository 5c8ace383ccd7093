package service

import "time"

// TimestampLayout is how every timestamp leaves the API: UTC, millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// UnknownEventName labels a team whose event reference points at a missing event.
const UnknownEventName = "Unknown Event"

func formatTime(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// eventNameFor resolves a team's event title against titles.
// Teams without a reference get nil; dangling references get UnknownEventName.
func eventNameFor(eventID *string, titles map[string]string) *string {
	if eventID == nil || *eventID == "" {
		return nil
	}
	if title, ok := titles[*eventID]; ok {
		return &title
	}
	name := UnknownEventName
	return &name
}

// eventRefs returns the distinct non-empty event ids in refs, first occurrence first.
func eventRefs(refs []*string) []string {
	seen := make(map[string]struct{}, len(refs))
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		if ref == nil || *ref == "" {
			continue
		}
		if _, ok := seen[*ref]; ok {
			continue
		}
		seen[*ref] = struct{}{}
		ids = append(ids, *ref)
	}
	return ids
}
