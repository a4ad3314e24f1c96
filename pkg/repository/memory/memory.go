package memory

import (
	"github.com/geunaseh/jeumala/pkg/domain/interfaces"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

// Memory keeps all data in process memory. Intended for tests and local runs.
type Memory struct {
	record *recordRepository
	user   *userRepository
	page   *pageRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		record: newRecordRepository(),
		user:   newUserRepository(),
		page:   newPageRepository(),
	}
}

func (m *Memory) Record() interfaces.RecordRepository {
	return m.record
}

func (m *Memory) User() interfaces.UserRepository {
	return m.user
}

func (m *Memory) Page() interfaces.PageRepository {
	return m.page
}
