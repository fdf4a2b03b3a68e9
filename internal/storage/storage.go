// /internal/storage/storage.go
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/keshon/datastore"
)

const (
	commandHistoryLimit int = 50

	// GlobalScope keys registration state of globally registered commands.
	GlobalScope = "global"
)

type Storage struct {
	ds *datastore.DataStore
}

type CommandHistoryRecord struct {
	InvocationID string    `json:"invocation_id"`
	ChannelID    string    `json:"channel_id"`
	ChannelName  string    `json:"channel_name"`
	GuildName    string    `json:"guild_name"`
	UserID       string    `json:"user_id"`
	Username     string    `json:"username"`
	Command      string    `json:"command"`
	Handler      string    `json:"handler"`
	Param        string    `json:"param"`
	Source       string    `json:"source"` // "slash" or "text"
	Datetime     time.Time `json:"datetime"`
}

type Record struct {
	Prefixes        []string               `json:"prefixes,omitempty"`
	CommandsHistory []CommandHistoryRecord `json:"cmd_history"`
	CommandHashes   map[string]string      `json:"cmd_hashes,omitempty"`
}

func New(filePath string) (*Storage, error) {
	ds, err := datastore.New(filePath)
	if err != nil {
		return nil, err
	}
	return &Storage{ds: ds}, nil
}

func (s *Storage) Close() error {
	return s.ds.Close()
}

// getOrCreateGuildRecord returns a copy of the record stored under key.
// Values loaded from disk come back as generic maps, so the record is
// round-tripped through JSON either way.
func (s *Storage) getOrCreateGuildRecord(key string) (*Record, error) {
	data, exists := s.ds.Get(key)
	if !exists {
		newRecord := &Record{
			CommandsHistory: []CommandHistoryRecord{},
			CommandHashes:   map[string]string{},
		}
		s.ds.Add(key, newRecord)
		return newRecord, nil
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("error marshalling data: %w", err)
	}

	var record Record
	if err := json.Unmarshal(jsonData, &record); err != nil {
		return nil, fmt.Errorf("error unmarshalling to *Record: %w", err)
	}

	if record.CommandHashes == nil {
		record.CommandHashes = map[string]string{}
	}
	if len(record.CommandsHistory) > commandHistoryLimit {
		record.CommandsHistory = record.CommandsHistory[len(record.CommandsHistory)-commandHistoryLimit:]
	}

	return &record, nil
}
