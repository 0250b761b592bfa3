package response

import (
	"encoding/json"
	"time"
)

// Resp is the envelope every endpoint answers with. ErrorCode 0 means success.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// NewOKResp wraps data in a success envelope.
func NewOKResp(data any) Resp {
	return Resp{Message: MessageSuccess, Data: data}
}

// NewErrorResp builds a failure envelope. A nil data map becomes an empty object.
func NewErrorResp(code int, err error, data map[string]any) Resp {
	if data == nil {
		data = map[string]any{}
	}
	return Resp{ErrorCode: code, Message: err.Error(), Data: data}
}

// Date is a schedule day, written as DateFormat.
type Date time.Time

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(DateFormat))
}

// UnmarshalJSON reads DateFormat in UTC.
func (d *Date) UnmarshalJSON(b []byte) error {
	t, err := parseJSONTime(b, DateFormat)
	if err != nil {
		return err
	}
	*d = Date(t)
	return nil
}

// DateTime is a slot boundary, written as DateTimeFormat with its own offset.
type DateTime time.Time

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(DateTimeFormat))
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	t, err := parseJSONTime(b, DateTimeFormat)
	if err != nil {
		return err
	}
	*d = DateTime(t)
	return nil
}

func parseJSONTime(b []byte, layout string) (time.Time, error) {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return time.Time{}, err
	}
	return time.Parse(layout, s)
}
