// Package api is the HTTP client for the booking backend: the room
// directory, the per-room working-hours store and the meeting service.
// The backend itself (and its calendar-provider plumbing) is out of scope;
// this package only shapes requests and surfaces transport failures with
// enough context to act on.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"roomboard/internal/room"
)

// TransportError wraps a network or backend failure with the operation and
// the room it concerned. No retries, no timeouts beyond the HTTP client's
// own: a failed call surfaces immediately.
type TransportError struct {
	Op   string
	Room string
	Err  error
}

func (e *TransportError) Error() string {
	if e.Room != "" {
		return fmt.Sprintf("%s (%s): %v", e.Op, e.Room, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Client talks to the booking backend.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	log     *zap.Logger
}

// New creates a backend client. The token is sent as a bearer token when
// set; logger may be zap.NewNop().
func New(baseURL, token string, log *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     log,
	}
}

type roomPayload struct {
	EmailAddress string `json:"emailAddress"`
	DisplayName  string `json:"displayName"`
}

type roomsResponse struct {
	Rooms []roomPayload `json:"rooms"`
}

// workingHoursResponse is the GET shape: the wire document plus the
// caller's edit permission on this room.
type workingHoursResponse struct {
	room.WireDocument
	CanEdit *bool `json:"canEdit,omitempty"`
}

type meetingPayload struct {
	ID             string    `json:"id"`
	Room           string    `json:"room"`
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
	Subject        string    `json:"subject"`
	Organizer      string    `json:"organizer,omitempty"`
	OrganizerEmail string    `json:"organizerEmail,omitempty"`
	IsOrganizer    bool      `json:"isOrganizer"`
	RoomResponse   string    `json:"roomResponse"`
}

type meetingsResponse struct {
	Meetings []meetingPayload `json:"meetings"`
}

// BookingRequest is the create-meeting payload.
type BookingRequest struct {
	Room      string `json:"room"`
	Date      string `json:"date"` // YYYY-MM-DD
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Subject   string `json:"subject"`
	Notes     string `json:"notes,omitempty"`
}

// Rooms fetches the room directory. Editability and working hours are
// filled in later by FetchAllWorkingHours.
func (c *Client) Rooms(ctx context.Context) ([]*room.Room, error) {
	var resp roomsResponse
	if err := c.do(ctx, http.MethodGet, "/api/rooms", nil, &resp, ""); err != nil {
		return nil, &TransportError{Op: "listing rooms", Err: err}
	}
	rooms := make([]*room.Room, 0, len(resp.Rooms))
	for _, p := range resp.Rooms {
		rooms = append(rooms, &room.Room{
			Email:       p.EmailAddress,
			DisplayName: p.DisplayName,
		})
	}
	c.log.Debug("fetched rooms", zap.Int("count", len(rooms)))
	return rooms, nil
}

// WorkingHours fetches one room's document. A missing document is not an
// error: it returns (nil, true, nil), meaning no booking restriction and
// editable by default.
func (c *Client) WorkingHours(ctx context.Context, roomEmail string) (*room.WorkingHours, bool, error) {
	var resp workingHoursResponse
	path := "/api/working-hours/" + url.PathEscape(roomEmail)
	err := c.do(ctx, http.MethodGet, path, nil, &resp, "")
	if errors.Is(err, errNotFound) {
		return nil, true, nil
	}
	if err != nil {
		return nil, false, &TransportError{Op: "loading working hours", Room: roomEmail, Err: err}
	}
	wh, err := room.ParseWorkingHours(&resp.WireDocument)
	if err != nil {
		return nil, false, &TransportError{Op: "parsing working hours", Room: roomEmail, Err: err}
	}
	editable := resp.CanEdit == nil || *resp.CanEdit
	return wh, editable, nil
}

// SaveWorkingHours replaces one room's document wholesale. No incremental
// diff: the backend stores exactly what is sent.
func (c *Client) SaveWorkingHours(ctx context.Context, roomEmail string, doc *room.WireDocument) error {
	path := "/api/working-hours/" + url.PathEscape(roomEmail)
	if err := c.do(ctx, http.MethodPost, path, doc, nil, ""); err != nil {
		return &TransportError{Op: "saving working hours", Room: roomEmail, Err: err}
	}
	return nil
}

// Meetings fetches all meetings visible to the dashboard.
func (c *Client) Meetings(ctx context.Context) ([]room.Meeting, error) {
	var resp meetingsResponse
	if err := c.do(ctx, http.MethodGet, "/api/meetings", nil, &resp, ""); err != nil {
		return nil, &TransportError{Op: "listing meetings", Err: err}
	}
	meetings := make([]room.Meeting, 0, len(resp.Meetings))
	for _, p := range resp.Meetings {
		meetings = append(meetings, room.Meeting{
			ID:             p.ID,
			Room:           p.Room,
			Start:          p.Start,
			End:            p.End,
			Subject:        p.Subject,
			Organizer:      p.Organizer,
			OrganizerEmail: p.OrganizerEmail,
			IsOrganizer:    p.IsOrganizer,
			ResponseStatus: p.RoomResponse,
		})
	}
	return meetings, nil
}

// RequestMeeting books a meeting. Each attempt carries a fresh request ID
// so the backend can deduplicate resubmissions.
func (c *Client) RequestMeeting(ctx context.Context, req BookingRequest) error {
	requestID := uuid.NewString()
	if err := c.do(ctx, http.MethodPost, "/api/request-meeting", req, nil, requestID); err != nil {
		return &TransportError{Op: "booking meeting", Room: req.Room, Err: err}
	}
	c.log.Info("meeting requested",
		zap.String("room", req.Room),
		zap.String("date", req.Date),
		zap.String("start", req.StartTime),
		zap.String("request_id", requestID))
	return nil
}

// CancelMeeting deletes a meeting by id, scoped to its room.
func (c *Client) CancelMeeting(ctx context.Context, meetingID, roomName string) error {
	path := "/api/meetings/" + url.PathEscape(meetingID) + "?room=" + url.QueryEscape(roomName)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil, ""); err != nil {
		return &TransportError{Op: "cancelling meeting", Room: roomName, Err: err}
	}
	return nil
}

// errNotFound marks a 404, which WorkingHours treats as "no document".
var errNotFound = errors.New("not found")

type errorResponse struct {
	Error string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, requestID string) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return errNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr errorResponse
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("backend: %s", apiErr.Error)
		}
		return fmt.Errorf("backend: %s", resp.Status)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}
