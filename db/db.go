package db

import (
	"fmt"
	"strings"

	"github.com/jsphweid/capofinder/chord"
	"github.com/jsphweid/capofinder/constants"
	"github.com/jsphweid/capofinder/model"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
)

// DynamoDB caps BatchGetItem at 100 keys
const MaxTitles = 100

// MaxBatchAttempts bounds the follow-up requests for unprocessed keys.
const MaxBatchAttempts = 5

type Songbook struct {
	client dynamodbiface.DynamoDBAPI
	table  string
}

func NewSongbook(client dynamodbiface.DynamoDBAPI, table string) *Songbook {
	return &Songbook{client: client, table: table}
}

func Connect(cfg constants.Config) (*Songbook, error) {
	endpoint := cfg.DynamoEndpoint
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String(cfg.DynamoRegion),
		Endpoint: &endpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create a new DynamoDB session: %w", err)
	}
	return NewSongbook(dynamodb.New(sess), cfg.SongTable), nil
}

func songFromItem(item map[string]*dynamodb.AttributeValue) (model.Song, error) {
	var s model.Song
	if v, ok := item["PK"]; ok && v.S != nil {
		s.Title = *v.S
	}
	if v, ok := item["Artist"]; ok && v.S != nil {
		s.Artist = *v.S
	}
	v, ok := item["Chords"]
	if !ok || v.S == nil {
		return s, fmt.Errorf("song %q has no chords", s.Title)
	}
	p, err := chord.ParseProgression(strings.Fields(*v.S))
	if err != nil {
		return s, fmt.Errorf("song %q: %w", s.Title, err)
	}
	s.Chords = p
	return s, nil
}

// GetSongs looks up songs by title. Titles that are not in the table are
// absent from the result.
func (b *Songbook) GetSongs(titles []string) (map[string]model.Song, error) {
	if len(titles) > MaxTitles {
		return nil, fmt.Errorf("can look up at most %v titles, got %v", MaxTitles, len(titles))
	}

	res := make(map[string]model.Song)
	if len(titles) == 0 {
		return res, nil
	}

	seen := make(map[string]bool)
	var keys []map[string]*dynamodb.AttributeValue
	for _, title := range titles {
		// DynamoDB rejects a batch holding the same key twice
		if seen[title] {
			continue
		}
		seen[title] = true
		key := make(map[string]*dynamodb.AttributeValue)
		key["PK"] = &dynamodb.AttributeValue{
			S: aws.String(title),
		}
		keys = append(keys, key)
	}

	requestItems := map[string]*dynamodb.KeysAndAttributes{
		b.table: {Keys: keys},
	}
	for attempt := 0; len(requestItems) > 0; attempt++ {
		if attempt == MaxBatchAttempts {
			return nil, fmt.Errorf("DynamoDB left keys unprocessed after %v attempts", MaxBatchAttempts)
		}
		out, err := b.client.BatchGetItem(&dynamodb.BatchGetItemInput{RequestItems: requestItems})
		if err != nil {
			return nil, fmt.Errorf("error from DynamoDB: %w", err)
		}

		for _, item := range out.Responses[b.table] {
			song, err := songFromItem(item)
			if err != nil {
				return nil, err
			}
			res[song.Title] = song
		}
		requestItems = out.UnprocessedKeys
	}

	return res, nil
}
