package service

import (
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/sreejith97/hireai/config"
	"github.com/sreejith97/hireai/model"
)

// ErrContractNotFound is returned when a contract id does not resolve
var ErrContractNotFound = errors.New("contract not found")

// ClauseStore is an in-memory store for extracted clauses
// In production, this should be replaced with a database
type ClauseStore struct {
	clauses map[string]*model.Clause
	mu      sync.RWMutex
}

// ContractStore is an in-memory store for contracts
type ContractStore struct {
	contracts    map[string]*model.Contract
	mu           sync.RWMutex
	maxContracts int // Maximum contracts to keep, 0 = unlimited
}

// SourceStore is an in-memory store for ingested source documents
type SourceStore struct {
	sources map[string]*model.Source
	mu      sync.RWMutex
}

// EmployeeStore is an in-memory store for imported employee records
type EmployeeStore struct {
	employees map[string]*model.Employee
	mu        sync.RWMutex
}

var (
	globalClauseStore   *ClauseStore
	globalContractStore *ContractStore
	globalSourceStore   *SourceStore
	globalEmployeeStore *EmployeeStore
	storeOnce           sync.Once
)

// InitStores initializes the global stores with configuration
func InitStores(cfg *config.StoreConfig) {
	storeOnce.Do(func() {
		maxContracts := cfg.MaxContracts
		if maxContracts < 0 {
			maxContracts = 0
		}
		globalClauseStore = &ClauseStore{clauses: make(map[string]*model.Clause)}
		globalContractStore = &ContractStore{
			contracts:    make(map[string]*model.Contract),
			maxContracts: maxContracts,
		}
		globalSourceStore = &SourceStore{sources: make(map[string]*model.Source)}
		globalEmployeeStore = &EmployeeStore{employees: make(map[string]*model.Employee)}
		slog.Info("stores initialized", "max_contracts", maxContracts)
	})
}

// GetClauseStore returns the global clause store
func GetClauseStore() *ClauseStore {
	if globalClauseStore == nil {
		globalClauseStore = &ClauseStore{clauses: make(map[string]*model.Clause)}
	}
	return globalClauseStore
}

// GetContractStore returns the global contract store
func GetContractStore() *ContractStore {
	if globalContractStore == nil {
		globalContractStore = &ContractStore{
			contracts:    make(map[string]*model.Contract),
			maxContracts: 100, // Default: keep 100 contracts
		}
	}
	return globalContractStore
}

// GetSourceStore returns the global source store
func GetSourceStore() *SourceStore {
	if globalSourceStore == nil {
		globalSourceStore = &SourceStore{sources: make(map[string]*model.Source)}
	}
	return globalSourceStore
}

// GetEmployeeStore returns the global employee store
func GetEmployeeStore() *EmployeeStore {
	if globalEmployeeStore == nil {
		globalEmployeeStore = &EmployeeStore{employees: make(map[string]*model.Employee)}
	}
	return globalEmployeeStore
}

// --- ClauseStore ---

func (s *ClauseStore) Save(clause *model.Clause) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clauses[clause.ID] = clause
}

func (s *ClauseStore) Get(id string) *model.Clause {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clauses[id]
}

// Find returns clauses matching the given filters; empty filters match all
func (s *ClauseStore) Find(country, clauseType string) []*model.Clause {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*model.Clause
	for _, c := range s.clauses {
		if country != "" && c.Country != country {
			continue
		}
		if clauseType != "" && c.ClauseType != clauseType {
			continue
		}
		result = append(result, c)
	}
	sortClausesByCreation(result)
	return result
}

// FindBySourceIDs returns clauses originating from any of the given sources
func (s *ClauseStore) FindBySourceIDs(sourceIDs []string) []*model.Clause {
	idSet := make(map[string]bool, len(sourceIDs))
	for _, id := range sourceIDs {
		idSet[id] = true
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*model.Clause
	for _, c := range s.clauses {
		if idSet[c.SourceID] {
			result = append(result, c)
		}
	}
	sortClausesByCreation(result)
	return result
}

func (s *ClauseStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clauses)
}

func sortClausesByCreation(clauses []*model.Clause) {
	sort.Slice(clauses, func(i, j int) bool {
		return clauses[i].CreatedAt.Before(clauses[j].CreatedAt)
	})
}

// --- ContractStore ---

func (s *ContractStore) Save(contract *model.Contract) {
	s.mu.Lock()
	defer s.mu.Unlock()

	contract.UpdatedAt = time.Now()
	s.contracts[contract.ID] = contract

	// Cleanup if exceeds max
	s.cleanupIfNeeded()
}

func (s *ContractStore) Get(id string) *model.Contract {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.contracts[id]
}

// List returns contracts, optionally filtered by type
func (s *ContractStore) List(contractType string) []*model.Contract {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*model.Contract
	for _, c := range s.contracts {
		if contractType != "" && c.ContractType != contractType {
			continue
		}
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result
}

// cleanupIfNeeded removes oldest contracts if store exceeds maxContracts
// Must be called with lock held
func (s *ContractStore) cleanupIfNeeded() {
	if s.maxContracts <= 0 {
		return // Unlimited
	}

	if len(s.contracts) <= s.maxContracts {
		return
	}

	// Sort contracts by creation time
	contracts := make([]*model.Contract, 0, len(s.contracts))
	for _, c := range s.contracts {
		contracts = append(contracts, c)
	}
	sort.Slice(contracts, func(i, j int) bool {
		return contracts[i].CreatedAt.Before(contracts[j].CreatedAt)
	})

	// Remove oldest contracts
	removeCount := len(contracts) - s.maxContracts
	for i := 0; i < removeCount; i++ {
		slog.Info("auto-cleaning old contract",
			"contract_id", contracts[i].ID,
			"created_at", contracts[i].CreatedAt,
		)
		delete(s.contracts, contracts[i].ID)
	}
}

// Count returns the number of contracts in the store
func (s *ContractStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.contracts)
}

// --- SourceStore ---

func (s *SourceStore) Save(source *model.Source) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sources[source.ID] = source
}

func (s *SourceStore) Get(id string) *model.Source {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sources[id]
}

// ListByCategory returns sources in the given category; empty matches all
func (s *SourceStore) ListByCategory(category string) []*model.Source {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*model.Source
	for _, src := range s.sources {
		if category != "" && src.Category != category {
			continue
		}
		result = append(result, src)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result
}

func (s *SourceStore) UpdateStatus(id, status, errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if src, ok := s.sources[id]; ok {
		src.Status = status
		src.ErrorMsg = errMsg
	}
}

// --- EmployeeStore ---

func (s *EmployeeStore) Save(employee *model.Employee) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.employees[employee.ID] = employee
}

func (s *EmployeeStore) Get(id string) *model.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.employees[id]
}

// FindByEmployeeID looks up an employee by the roster-assigned identifier
func (s *EmployeeStore) FindByEmployeeID(employeeID string) *model.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.employees {
		if e.EmployeeID == employeeID {
			return e
		}
	}
	return nil
}

func (s *EmployeeStore) List() []*model.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*model.Employee, 0, len(s.employees))
	for _, e := range s.employees {
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result
}
