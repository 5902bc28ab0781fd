package misc

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"

	log "github.com/sirupsen/logrus"
)

// Quote is a motivational quote shown on the dashboard.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
	Genre  string `json:"genre"`
}

type QuotesManager struct {
	Quotes       []*Quote
	GenresQuotes map[string][]*Quote
}

func NewQuotesManager(quotesCsvReader *csv.Reader) (*QuotesManager, error) {
	qm := &QuotesManager{
		GenresQuotes: make(map[string][]*Quote),
	}

	log.Println("reading quotes CSV ...")

	quotesCsvReader.Comma = ';'
	for {
		record, err := quotesCsvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if len(record) != 3 {
			return nil, fmt.Errorf("record [%s] does not have 3 elements", record)
		}

		// QUOTE;AUTHOR;GENRE
		quote := &Quote{
			Text:   record[0],
			Author: record[1],
			Genre:  record[2],
		}
		qm.Quotes = append(qm.Quotes, quote)
		qm.GenresQuotes[quote.Genre] = append(qm.GenresQuotes[quote.Genre], quote)
	}

	log.Printf("quotes CSV read %d quotes", len(qm.Quotes))

	return qm, nil
}

func (qm *QuotesManager) RandomQuote() *Quote {
	return qm.Quotes[rand.Intn(len(qm.Quotes))]
}

// RandomQuoteForGenre falls back to any quote for an unknown genre.
func (qm *QuotesManager) RandomQuoteForGenre(genre string) *Quote {
	quotes, ok := qm.GenresQuotes[genre]
	if !ok || len(quotes) == 0 {
		return qm.RandomQuote()
	}
	return quotes[rand.Intn(len(quotes))]
}
