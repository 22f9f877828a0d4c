package respond

import (
	"strconv"
	"strings"
)

// mediaRange is one parsed element of an Accept header.
type mediaRange struct {
	typ     string
	subtype string
	q       float64
}

// parseAccept splits an Accept header into media ranges. Types are lowercased,
// a bare type becomes type/*, and a missing or invalid q defaults to 1.
func parseAccept(header string) []mediaRange {
	var ranges []mediaRange
	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		params := strings.Split(part, ";")
		mediaType := strings.ToLower(strings.TrimSpace(params[0]))
		if mediaType == "" {
			continue
		}

		mr := mediaRange{q: 1.0}
		if typ, subtype, ok := strings.Cut(mediaType, "/"); ok {
			mr.typ, mr.subtype = strings.TrimSpace(typ), strings.TrimSpace(subtype)
		} else {
			mr.typ, mr.subtype = mediaType, "*"
		}

		for _, param := range params[1:] {
			key, value, ok := strings.Cut(strings.TrimSpace(param), "=")
			if !ok || !strings.EqualFold(strings.TrimSpace(key), "q") {
				continue
			}
			q, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
			if err != nil || q < 0 || q > 1 {
				q = 1.0
			}
			mr.q = q
		}
		ranges = append(ranges, mr)
	}
	return ranges
}

// specificity ranks how closely r names application/<suffix> or
// application/problem+<suffix>. It returns -1 when r does not match.
func (r mediaRange) specificity(suffix string) int {
	switch {
	case r.typ == "*" && r.subtype == "*":
		return 0
	case r.typ != "application":
		return -1
	case r.subtype == "*":
		return 1
	case r.subtype == "*+"+suffix:
		return 2
	case r.subtype == suffix:
		return 3
	case r.subtype == "problem+"+suffix:
		return 4
	default:
		return -1
	}
}

// preference returns the q-value and specificity of the most specific range
// matching suffix. A format no range matches has q 0.
func preference(ranges []mediaRange, suffix string) (q float64, rank int) {
	rank = -1
	for _, r := range ranges {
		if s := r.specificity(suffix); s > rank {
			rank, q = s, r.q
		}
	}
	return q, rank
}

// selectFormat reports whether CBOR should be used for the given Accept header.
// The q-value decides first and specificity breaks ties. JSON wins every
// remaining tie, including an absent header or no acceptable format.
func selectFormat(accept string) bool {
	ranges := parseAccept(accept)
	if len(ranges) == 0 {
		return false
	}
	cborQ, cborRank := preference(ranges, "cbor")
	jsonQ, jsonRank := preference(ranges, "json")
	if cborQ <= 0 {
		return false
	}
	if cborQ != jsonQ {
		return cborQ > jsonQ
	}
	return cborRank > jsonRank
}
