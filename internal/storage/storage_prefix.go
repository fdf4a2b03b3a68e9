package storage

import (
	"fmt"
	"strings"
)

const maxPrefixLen = 8

// GetPrefixes returns the guild's custom text prefixes. An empty result means
// the configured defaults apply.
func (s *Storage) GetPrefixes(guildID string) ([]string, error) {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return nil, err
	}
	return record.Prefixes, nil
}

func (s *Storage) SetPrefixes(guildID string, prefixes []string) error {
	for _, p := range prefixes {
		if strings.TrimSpace(p) == "" || len(p) > maxPrefixLen {
			return fmt.Errorf("invalid prefix %q: must be 1-%d characters", p, maxPrefixLen)
		}
	}

	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}
	record.Prefixes = append([]string(nil), prefixes...)
	s.ds.Add(guildID, record)
	return nil
}

// ResetPrefixes drops the guild's custom prefixes.
func (s *Storage) ResetPrefixes(guildID string) error {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}
	record.Prefixes = nil
	s.ds.Add(guildID, record)
	return nil
}
