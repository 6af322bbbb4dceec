package model

import (
	"encoding/json"
	"fmt"
)

// Sentiment is the final polarity label assigned to a review.
type Sentiment int

// Sentiment values. The string forms are the literal labels persisted in
// the output tables.
const (
	Negative Sentiment = -1
	Neutral  Sentiment = 0
	Positive Sentiment = 1
)

var sentimentNames = map[Sentiment]string{
	Negative: "Negativo",
	Neutral:  "Neutro",
	Positive: "Positivo",
}

var sentimentFromName = map[string]Sentiment{
	"Negativo": Negative,
	"Neutro":   Neutral,
	"Positivo": Positive,
}

// String returns the persisted label for the sentiment.
func (s Sentiment) String() string {
	if name, ok := sentimentNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Sentiment(%d)", int(s))
}

// ParseSentiment maps a persisted label back to its Sentiment value.
func ParseSentiment(label string) (Sentiment, error) {
	if s, ok := sentimentFromName[label]; ok {
		return s, nil
	}
	return Neutral, fmt.Errorf("unknown sentiment label: %q", label)
}

// MarshalJSON encodes the sentiment as its label string.
func (s Sentiment) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a label string into a Sentiment.
func (s *Sentiment) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return err
	}
	v, err := ParseSentiment(label)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
