package storage

// AppendCommandToHistory appends a command history record for a guild,
// keeping the most recent entries only.
func (s *Storage) AppendCommandToHistory(guildID string, rec CommandHistoryRecord) error {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}

	record.CommandsHistory = append(record.CommandsHistory, rec)
	if len(record.CommandsHistory) > commandHistoryLimit {
		record.CommandsHistory = record.CommandsHistory[len(record.CommandsHistory)-commandHistoryLimit:]
	}
	s.ds.Add(guildID, record)
	return nil
}

// FetchCommandHistory returns the guild's history, oldest first.
func (s *Storage) FetchCommandHistory(guildID string) ([]CommandHistoryRecord, error) {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return nil, err
	}
	return record.CommandsHistory, nil
}

// CommandHashes returns the definition hashes last registered for scope,
// which is a guild id or GlobalScope.
func (s *Storage) CommandHashes(scope string) (map[string]string, error) {
	record, err := s.getOrCreateGuildRecord(scope)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(record.CommandHashes))
	for k, v := range record.CommandHashes {
		out[k] = v
	}
	return out, nil
}

func (s *Storage) SetCommandHashes(scope string, hashes map[string]string) error {
	record, err := s.getOrCreateGuildRecord(scope)
	if err != nil {
		return err
	}
	record.CommandHashes = hashes
	s.ds.Add(scope, record)
	return nil
}
