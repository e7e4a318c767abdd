package snapshot

import (
	"sync"
	"time"

	"github.com/estoquelab/painel-vendas-api/internal/domain"
)

// Snapshot é o estado corrente da aplicação: as listas de produtos e
// vendas tal como retornadas pelo backoffice no último fetch completo.
// As listas são sempre substituídas por inteiro, nunca remendadas.
type Snapshot struct {
	Products    []domain.Product
	Sales       []domain.Sale
	RefreshedAt time.Time
	Version     uint64
}

// Store guarda o snapshot corrente e serializa as substituições.
//
// Não há cancelamento de fetch em andamento: quando dois refreshes se
// sobrepõem, o token de sequência garante que o último fetch emitido
// vence — um resultado atrasado e mais velho nunca sobrescreve dados
// mais novos.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
	lastSeq  uint64 // último token emitido
}

func NewStore() *Store {
	return &Store{}
}

// Begin emite um token de sequência para um novo refresh. O token deve
// ser obtido antes de iniciar os fetches remotos.
func (s *Store) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSeq++
	return s.lastSeq
}

// Replace substitui o snapshot se o token ainda for o mais recente
// aplicado. Retorna false quando um refresh mais novo já foi aplicado,
// caso em que o resultado deve ser descartado.
func (s *Store) Replace(token uint64, products []domain.Product, sales []domain.Sale) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token < s.snapshot.Version {
		return false
	}

	s.snapshot = Snapshot{
		Products:    products,
		Sales:       sales,
		RefreshedAt: time.Now(),
		Version:     token,
	}

	return true
}

// Current devolve o snapshot corrente. As fatias retornadas não devem
// ser modificadas pelos chamadores.
func (s *Store) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot
}

// IsEmpty informa se nenhum refresh foi aplicado ainda.
func (s *Store) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot.Version == 0
}
