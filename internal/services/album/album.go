// Package album синхронизирует кэшированную проекцию альбомов пользователя
// с удалённым бэкендом, включая оптимистичную перестановку ячеек с откатом.
package album

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/magabrotheeeer/giftoutfit/internal/lib/sl"
	"github.com/magabrotheeeer/giftoutfit/internal/metrics"
	"github.com/magabrotheeeer/giftoutfit/internal/models"
)

var (
	// ErrPinnedCell возвращается при попытке переставить закреплённую ячейку.
	ErrPinnedCell = errors.New("pinned cell cannot be moved")
	// ErrCellNotFound возвращается, если позиция вне альбома.
	ErrCellNotFound = errors.New("cell not found")
	// ErrGridNotFound возвращается, если альбома нет среди альбомов владельца.
	ErrGridNotFound = errors.New("grid not found")
	// ErrSwapFailed оборачивает ошибку бэкенда при перестановке.
	ErrSwapFailed = errors.New("swap failed")
)

// Backend описывает операции бэкенда над альбомами.
type Backend interface {
	GetGrids(ctx context.Context, userID int64) ([]models.Grid, error)
	CreateGrid(ctx context.Context, name string) error
	DeleteGrid(ctx context.Context, gridID int64) error
	AddRow(ctx context.Context, gridID int64) error
	UpdateCell(ctx context.Context, gridID int64, pos models.CellPosition, gift *models.Gift) error
	SwapCells(ctx context.Context, gridID int64, src, dst models.CellPosition) error
	TogglePin(ctx context.Context, gridID int64, pos models.CellPosition, pinned bool) error
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(ctx context.Context, key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(ctx context.Context, key string) error
}

// state — то, что лежит в кэше под ключом grids:<userID>.
// Revision растёт при каждой локальной записи и служит для compare-and-swap при откате.
type state struct {
	Revision int64         `json:"revision"`
	Grids    []models.Grid `json:"grids"`
}

// Service управляет альбомами.
type Service struct {
	backend Backend
	cache   Cache
	ttl     time.Duration
	log     *slog.Logger

	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

// New создает сервис альбомов.
func New(backend Backend, cache Cache, ttl time.Duration, log *slog.Logger) *Service {
	return &Service{
		backend: backend,
		cache:   cache,
		ttl:     ttl,
		log:     log,
		locks:   make(map[int64]*sync.Mutex),
	}
}

func cacheKey(userID int64) string {
	return fmt.Sprintf("grids:%d", userID)
}

// ownerLock возвращает мьютекс кэша конкретного владельца.
func (s *Service) ownerLock(userID int64) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[userID] = l
	}
	return l
}

func (s *Service) load(ctx context.Context, userID int64) (state, bool, error) {
	var st state
	found, err := s.cache.Get(ctx, cacheKey(userID), &st)
	if err != nil {
		return state{}, false, err
	}
	return st, found, nil
}

// Grids возвращает альбомы пользователя из кэша или с бэкенда.
func (s *Service) Grids(ctx context.Context, userID int64) ([]models.Grid, error) {
	const op = "album.Grids"

	st, found, err := s.load(ctx, userID)
	if err != nil {
		s.log.Warn("failed to read grids from cache", sl.Op(op), sl.Err(err))
	}
	if found {
		return st.Grids, nil
	}

	grids, err := s.backend.GetGrids(ctx, userID)
	if err != nil {
		metrics.RecordBackendError(op)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	l := s.ownerLock(userID)
	l.Lock()
	defer l.Unlock()
	// пока шёл запрос, в кэш могла попасть оптимистичная запись
	if _, found, _ := s.load(ctx, userID); !found {
		if err := s.cache.Set(ctx, cacheKey(userID), state{Grids: grids}, s.ttl); err != nil {
			s.log.Warn("failed to cache grids", sl.Op(op), sl.Err(err))
		}
	}
	return grids, nil
}

func (s *Service) invalidate(ctx context.Context, op string, userID int64) {
	l := s.ownerLock(userID)
	l.Lock()
	defer l.Unlock()
	if err := s.cache.Invalidate(ctx, cacheKey(userID)); err != nil {
		s.log.Warn("failed to invalidate grids", sl.Op(op), sl.UserID(userID), sl.Err(err))
	}
}

// Create создает альбом текущего пользователя.
func (s *Service) Create(ctx context.Context, ownerID int64, name string) error {
	const op = "album.Create"
	if err := s.backend.CreateGrid(ctx, name); err != nil {
		metrics.RecordBackendError(op)
		return fmt.Errorf("%s: %w", op, err)
	}
	s.invalidate(ctx, op, ownerID)
	return nil
}

// Delete удаляет альбом текущего пользователя.
func (s *Service) Delete(ctx context.Context, ownerID, gridID int64) error {
	const op = "album.Delete"
	if err := s.backend.DeleteGrid(ctx, gridID); err != nil {
		metrics.RecordBackendError(op)
		return fmt.Errorf("%s: %w", op, err)
	}
	s.invalidate(ctx, op, ownerID)
	return nil
}

// AddRow добавляет в альбом пустую строку.
func (s *Service) AddRow(ctx context.Context, ownerID, gridID int64) error {
	const op = "album.AddRow"
	if err := s.backend.AddRow(ctx, gridID); err != nil {
		metrics.RecordBackendError(op)
		return fmt.Errorf("%s: %w", op, err)
	}
	s.invalidate(ctx, op, ownerID)
	return nil
}

// UpdateCell кладёт подарок в ячейку целиком или очищает её при gift == nil.
func (s *Service) UpdateCell(ctx context.Context, ownerID, gridID int64, pos models.CellPosition, gift *models.Gift) error {
	const op = "album.UpdateCell"
	if err := s.backend.UpdateCell(ctx, gridID, pos, gift); err != nil {
		metrics.RecordBackendError(op)
		return fmt.Errorf("%s: %w", op, err)
	}
	s.invalidate(ctx, op, ownerID)
	return nil
}

// TogglePin закрепляет или открепляет ячейку.
func (s *Service) TogglePin(ctx context.Context, ownerID, gridID int64, pos models.CellPosition, pinned bool) error {
	const op = "album.TogglePin"
	if err := s.backend.TogglePin(ctx, gridID, pos, pinned); err != nil {
		metrics.RecordBackendError(op)
		return fmt.Errorf("%s: %w", op, err)
	}
	s.invalidate(ctx, op, ownerID)
	return nil
}

// Swap меняет местами содержимое двух ячеек альбома.
//
// Новое состояние сразу записывается в кэш, после чего на бэкенд уходит один
// запрос. Если он завершился ошибкой, кэш возвращается к снимку, сделанному до
// перестановки, при условии что с тех пор его никто не перезаписал; иначе ключ
// сбрасывается и следующее чтение заберёт данные с бэкенда.
func (s *Service) Swap(ctx context.Context, ownerID, gridID int64, src, dst models.CellPosition) ([]models.Grid, error) {
	const op = "album.Swap"
	log := s.log.With(sl.Op(op), sl.UserID(ownerID), slog.Int64("grid_id", gridID))

	fetched, err := s.Grids(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	l := s.ownerLock(ownerID)
	l.Lock()
	st, found, err := s.load(ctx, ownerID)
	if err != nil {
		l.Unlock()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !found {
		st = state{Grids: fetched}
	}

	grid := findGrid(st.Grids, gridID)
	if grid == nil {
		l.Unlock()
		return nil, fmt.Errorf("%s: %w", op, ErrGridNotFound)
	}
	a, b := grid.Cell(src), grid.Cell(dst)
	if a == nil || b == nil {
		l.Unlock()
		return nil, fmt.Errorf("%s: %w", op, ErrCellNotFound)
	}
	if src == dst {
		l.Unlock()
		return st.Grids, nil
	}
	if a.Pinned || b.Pinned {
		l.Unlock()
		metrics.RecordSwap(metrics.SwapRejectedPinned)
		return nil, fmt.Errorf("%s: %w", op, ErrPinnedCell)
	}

	snapshot := models.CloneGrids(st.Grids)
	*a, *b = *b, *a
	st.Revision++
	optimistic := st.Revision
	if err := s.cache.Set(ctx, cacheKey(ownerID), st, s.ttl); err != nil {
		l.Unlock()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	l.Unlock()

	if err := s.backend.SwapCells(ctx, gridID, src, dst); err != nil {
		metrics.RecordBackendError(op)
		log.Warn("swap request failed, rolling back", sl.Err(err))
		s.rollback(context.WithoutCancel(ctx), log, ownerID, optimistic, snapshot)
		return nil, fmt.Errorf("%s: %w: %w", op, ErrSwapFailed, err)
	}

	metrics.RecordSwap(metrics.SwapApplied)
	return st.Grids, nil
}

// rollback восстанавливает снимок, если в кэше всё ещё лежит ревизия revision.
func (s *Service) rollback(ctx context.Context, log *slog.Logger, ownerID, revision int64, snapshot []models.Grid) {
	l := s.ownerLock(ownerID)
	l.Lock()
	defer l.Unlock()

	cur, found, err := s.load(ctx, ownerID)
	if err == nil && found && cur.Revision == revision {
		err = s.cache.Set(ctx, cacheKey(ownerID), state{Revision: revision + 1, Grids: snapshot}, s.ttl)
		if err == nil {
			metrics.RecordSwap(metrics.SwapRolledBack)
			return
		}
	}
	if err != nil {
		log.Warn("failed to restore grids snapshot", sl.Err(err))
	}

	metrics.RecordSwap(metrics.SwapInvalidated)
	if err := s.cache.Invalidate(ctx, cacheKey(ownerID)); err != nil {
		log.Error("failed to invalidate grids after rollback", sl.Err(err))
	}
}

// Pinned возвращает закреплённые подарки пользователя по всем альбомам,
// упорядоченные по pinned_position.
func (s *Service) Pinned(ctx context.Context, userID int64) ([]models.PinnedGift, error) {
	grids, err := s.Grids(ctx, userID)
	if err != nil {
		return nil, err
	}
	return collectPinned(grids), nil
}

func collectPinned(grids []models.Grid) []models.PinnedGift {
	out := make([]models.PinnedGift, 0)
	for _, g := range grids {
		for _, row := range g.Rows {
			for ci, c := range row.Cells {
				if !c.Pinned || c.Gift == nil {
					continue
				}
				order := 0
				if c.PinnedPosition != nil {
					order = *c.PinnedPosition
				}
				out = append(out, models.PinnedGift{
					GridID:   g.ID,
					Position: models.CellPosition{RowIndex: row.RowIndex, CellIndex: ci},
					Order:    order,
					Gift:     *c.Gift,
				})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func findGrid(grids []models.Grid, id int64) *models.Grid {
	for i := range grids {
		if grids[i].ID == id {
			return &grids[i]
		}
	}
	return nil
}
