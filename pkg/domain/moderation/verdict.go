package moderation

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Source records where a verdict came from, so that an audit can tell
// "the classifier said safe" apart from "the classifier was unavailable".
type Source string

const (
	SourceLocalFilter        Source = "LOCAL_FILTER"
	SourceExternalClassifier Source = "EXTERNAL_CLASSIFIER"
	SourceFailsafe           Source = "FAILSAFE"
)

const LanguageUnknown = "unknown"

// Verdict is the outcome of one moderation evaluation. It is embedded into
// the post and comment records at creation time.
type Verdict struct {
	IsUnsafe     bool       `json:"is_unsafe"`
	Confidence   float64    `json:"confidence"`
	Categories   StringList `json:"categories" gorm:"type:jsonb"`
	FlaggedTerms StringList `json:"flagged_terms" gorm:"type:jsonb"`
	Language     string     `json:"language"`
	Source       Source     `json:"source"`
	Reason       string     `json:"reason,omitempty"`
}

// StringList is a JSON-encoded string slice column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", value)
	}
	if len(data) == 0 {
		*l = StringList{}
		return nil
	}
	return json.Unmarshal(data, l)
}
