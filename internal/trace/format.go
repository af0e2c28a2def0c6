package trace

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Format represents the output format for trace events.
type Format uint8

const (
	FormatAuto   Format = iota // по расширению файла
	FormatText                 // human-readable text
	FormatNDJSON               // newline-delimited JSON
)

// ParseFormat converts a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return FormatAuto, nil
	case "text":
		return FormatText, nil
	case "ndjson", "json":
		return FormatNDJSON, nil
	default:
		return FormatAuto, fmt.Errorf("invalid trace format: %q (expected: auto|text|ndjson)", s)
	}
}

// FormatEvent formats an event according to the specified format.
func FormatEvent(ev *Event, format Format) []byte {
	if format == FormatNDJSON {
		return formatNDJSON(ev)
	}
	return formatText(ev)
}

type jsonEvent struct {
	Time       string            `json:"time"`
	Seq        uint64            `json:"seq"`
	Session    string            `json:"session,omitempty"`
	Kind       string            `json:"kind"`
	Scope      string            `json:"scope"`
	SpanID     uint64            `json:"span_id,omitempty"`
	ParentID   uint64            `json:"parent_id,omitempty"`
	Name       string            `json:"name"`
	Detail     string            `json:"detail,omitempty"`
	DurationMS float64           `json:"duration_ms,omitempty"`
	Extra      map[string]string `json:"extra,omitempty"`
}

// formatNDJSON formats an event as newline-delimited JSON.
func formatNDJSON(ev *Event) []byte {
	j := jsonEvent{
		Time:       ev.Time.Format("2006-01-02T15:04:05.000000Z07:00"),
		Seq:        ev.Seq,
		Session:    ev.Session,
		Kind:       ev.Kind.String(),
		Scope:      ev.Scope.String(),
		SpanID:     ev.SpanID,
		ParentID:   ev.ParentID,
		Name:       ev.Name,
		Detail:     ev.Detail,
		DurationMS: float64(ev.Duration.Microseconds()) / 1000,
		Extra:      ev.Extra,
	}
	data, _ := json.Marshal(j)
	return append(data, '\n')
}

// formatText: "[seq] →/← name (detail) {k=v} 1.23ms"
func formatText(ev *Event) []byte {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%6d] ", ev.Seq)
	if ev.ParentID > 0 {
		sb.WriteString("  ")
	}

	switch ev.Kind {
	case KindSpanBegin:
		sb.WriteString("→ ")
	case KindSpanEnd:
		sb.WriteString("← ")
	case KindPoint:
		sb.WriteString("• ")
	case KindError:
		sb.WriteString("! ")
	}
	sb.WriteString(ev.Name)

	if ev.Detail != "" {
		sb.WriteString(" (" + ev.Detail + ")")
	}

	if len(ev.Extra) > 0 {
		keys := make([]string, 0, len(ev.Extra))
		for k := range ev.Extra {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		sb.WriteString(" {")
		for i, k := range keys {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(k + "=" + ev.Extra[k])
		}
		sb.WriteString("}")
	}

	if ev.Kind == KindSpanEnd {
		fmt.Fprintf(&sb, " %.2fms", float64(ev.Duration.Microseconds())/1000)
	}
	sb.WriteString("\n")
	return []byte(sb.String())
}
