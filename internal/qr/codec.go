// Package qr implements the member check-in QR wire format:
//
//	MEMBER_CHECKIN:<member_id>:<meeting_id|GENERAL>
//
// Parsing is a total function over strings; it never performs I/O, so a bad
// payload is rejected before anything touches the network.
package qr

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yoshuavic8/church-management-sub002/internal/domain"
)

const (
	PayloadPrefix = "MEMBER_CHECKIN"
	ScopeGeneral  = "GENERAL"
)

// memberIDPattern is the UUID shape the contract requires: 36 characters,
// hex digits and hyphens in the canonical grouping.
var memberIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// Payload is a parsed check-in request. Scope is either ScopeGeneral, a
// concrete meeting id, or empty when the segment was omitted.
type Payload struct {
	MemberID string
	Scope    string
}

// Parse validates raw against the wire format.
func Parse(raw string) (*Payload, error) {
	segments := strings.Split(strings.TrimSpace(raw), ":")
	if len(segments) < 2 || segments[0] != PayloadPrefix {
		return nil, domain.ErrUnrecognizedFormat
	}

	memberID := segments[1]
	if !memberIDPattern.MatchString(memberID) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidMemberID, memberID)
	}

	p := &Payload{MemberID: memberID}
	if len(segments) > 2 {
		p.Scope = segments[2]
	}
	return p, nil
}

// ValidateTarget checks the payload's scope against the meeting being
// scanned. GENERAL (and an omitted scope) is accepted for any meeting; a
// concrete scope must match exactly.
func (p *Payload) ValidateTarget(meetingID string) error {
	if p.Scope == "" || p.Scope == ScopeGeneral || p.Scope == meetingID {
		return nil
	}
	return fmt.Errorf("%w: payload is for meeting %s", domain.ErrMeetingMismatch, p.Scope)
}

// Format renders the wire string for a member badge. An empty scope encodes
// as GENERAL.
func Format(memberID, scope string) string {
	if scope == "" {
		scope = ScopeGeneral
	}
	return fmt.Sprintf("%s:%s:%s", PayloadPrefix, memberID, scope)
}
