package constructor

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/magabrotheeeer/giftoutfit/internal/cache"
	"github.com/magabrotheeeer/giftoutfit/internal/lib/giftcdn"
	"github.com/magabrotheeeer/giftoutfit/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type BackendMock struct{ mock.Mock }

func (m *BackendMock) strings(args mock.Arguments) ([]string, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *BackendMock) ConstructorCollections(ctx context.Context) ([]string, error) {
	return m.strings(m.Called(ctx))
}
func (m *BackendMock) ConstructorModels(ctx context.Context, collection string) ([]string, error) {
	return m.strings(m.Called(ctx, collection))
}
func (m *BackendMock) ConstructorBackdrops(ctx context.Context, collection, model string) ([]string, error) {
	return m.strings(m.Called(ctx, collection, model))
}
func (m *BackendMock) ConstructorSymbols(ctx context.Context, collection, model, backdrop string) ([]string, error) {
	return m.strings(m.Called(ctx, collection, model, backdrop))
}
func (m *BackendMock) ConstructorAllBackdrops(ctx context.Context) ([]string, error) {
	return m.strings(m.Called(ctx))
}
func (m *BackendMock) ConstructorGift(ctx context.Context, collection, model, backdrop, symbol string) (*models.ConstructorGift, error) {
	args := m.Called(ctx, collection, model, backdrop, symbol)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ConstructorGift), args.Error(1)
}

type CatalogMock struct{ mock.Mock }

func (m *CatalogMock) Gifts(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
func (m *CatalogMock) Backdrops(ctx context.Context) ([]models.Backdrop, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Backdrop), args.Error(1)
}
func (m *CatalogMock) Collection(ctx context.Context, name string) (*models.GiftCollection, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GiftCollection), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func newService() (*Service, *BackendMock, *CatalogMock, *cache.Memory) {
	b := &BackendMock{}
	cat := &CatalogMock{}
	c := cache.NewMemory()
	return New(b, cat, c, time.Hour, giftcdn.New("", "", false), newNoopLogger()), b, cat, c
}

func TestService_CachesLists(t *testing.T) {
	s, b, _, _ := newService()
	ctx := context.Background()
	b.On("ConstructorModels", mock.Anything, "Plush Pepe").Return([]string{"Gold", "Silver"}, nil).Once()

	for i := 0; i < 3; i++ {
		got, err := s.Models(ctx, "Plush Pepe")
		require.NoError(t, err)
		assert.Equal(t, []string{"Gold", "Silver"}, got)
	}
	b.AssertExpectations(t)
}

func TestService_Options_Constructor(t *testing.T) {
	s, b, cat, _ := newService()
	ctx := context.Background()
	sel := Selection{Collection: "Plush Pepe", Model: "Gold", Backdrop: "Black"}

	b.On("ConstructorBackdrops", mock.Anything, "Plush Pepe", "Gold").Return([]string{"Black"}, nil).Once()
	b.On("ConstructorSymbols", mock.Anything, "Plush Pepe", "Gold", "Black").Return([]string{"Moon", "Ghost"}, nil).Once()
	cat.On("Backdrops", mock.Anything).Return([]models.Backdrop{{Name: "Black", EdgeColor: 3}}, nil).Once()
	cat.On("Collection", mock.Anything, "Plush Pepe").
		Return(&models.GiftCollection{Collection: "plushpepe", Gifts: sampleCollection()}, nil).Once()

	bg, err := s.Options(ctx, FieldBackground, ModeConstructor, sel)
	require.NoError(t, err)
	require.Len(t, bg, 1)
	assert.Equal(t, 3, bg[0].Background.EdgeColor)

	patterns, err := s.Options(ctx, FieldPattern, ModeConstructor, sel)
	require.NoError(t, err)
	require.Len(t, patterns, 2)
	assert.Equal(t, int64(2), patterns[0].GiftNumber)
	assert.Equal(t, int64(0), patterns[1].GiftNumber)

	b.AssertExpectations(t)
	cat.AssertExpectations(t)
}

func TestService_TreeIsBuiltOncePerCollection(t *testing.T) {
	s, b, cat, _ := newService()
	ctx := context.Background()
	col := &models.GiftCollection{Collection: "plushpepe", Gifts: sampleCollection()}

	cat.On("Collection", mock.Anything, "Plush Pepe").Return(col, nil).Once()
	b.On("ConstructorGift", mock.Anything, "Plush Pepe", "Gold", "Black", "Moon").
		Return(&models.ConstructorGift{GiftNumber: 2, Model: "Gold", Backdrop: "Black", Symbol: "Moon"}, nil).Once()
	cat.On("Backdrops", mock.Anything).Return([]models.Backdrop{}, nil)

	modelsOpts, err := s.Options(ctx, FieldModel, ModeFreeform, Selection{Collection: "Plush Pepe"})
	require.NoError(t, err)
	assert.NotEmpty(t, modelsOpts)

	patterns, err := s.Options(ctx, FieldPattern, ModeFreeform, Selection{Collection: "Plush Pepe"})
	require.NoError(t, err)
	assert.NotEmpty(t, patterns)

	_, err = s.Resolve(ctx, ModeConstructor, Selection{Collection: "Plush Pepe", Model: "Gold", Backdrop: "Black", Symbol: "Moon"})
	require.NoError(t, err)

	cat.AssertNumberOfCalls(t, "Collection", 1)
}

func TestService_Options_MissingPrerequisites(t *testing.T) {
	s, b, cat, _ := newService()
	ctx := context.Background()

	items, err := s.Options(ctx, FieldPattern, ModeConstructor, Selection{Collection: "Plush Pepe", Model: "Gold"})
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = s.Options(ctx, FieldModel, ModeFreeform, Selection{})
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = s.Options(ctx, Field("bogus"), ModeConstructor, Selection{})
	assert.ErrorIs(t, err, ErrUnknownField)

	b.AssertNotCalled(t, "ConstructorSymbols", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	cat.AssertNotCalled(t, "Collection", mock.Anything, mock.Anything)
}

func TestService_Options_FreeformUsesCatalog(t *testing.T) {
	s, b, cat, _ := newService()
	ctx := context.Background()

	cat.On("Gifts", mock.Anything).Return([]string{"Plush Pepe", "Jelly Bunny"}, nil).Once()
	b.On("ConstructorAllBackdrops", mock.Anything).Return([]string{"Black", "Azure", "Red"}, nil).Once()
	cat.On("Backdrops", mock.Anything).Return([]models.Backdrop{}, nil).Once()

	gifts, err := s.Options(ctx, FieldGifts, ModeFreeform, Selection{})
	require.NoError(t, err)
	assert.Len(t, gifts, 2)

	bg, err := s.Options(ctx, FieldBackground, ModeFreeform, Selection{Collection: "Plush Pepe"})
	require.NoError(t, err)
	assert.Len(t, bg, 3)
	b.AssertNotCalled(t, "ConstructorCollections", mock.Anything)
}

func TestService_Resolve(t *testing.T) {
	ctx := context.Background()
	col := &models.GiftCollection{Collection: "plushpepe", Gifts: sampleCollection()}
	palettes := []models.Backdrop{{Name: "Black", CenterColor: 99}}

	t.Run("freeform accepts any combination", func(t *testing.T) {
		s, b, cat, _ := newService()
		cat.On("Backdrops", mock.Anything).Return(palettes, nil).Once()

		gift, err := s.Resolve(ctx, ModeFreeform, Selection{Collection: "Plush Pepe", Model: "Silver", Backdrop: "Azure", Symbol: "Star"})
		require.NoError(t, err)
		assert.Equal(t, "Silver", gift.Model)
		assert.Equal(t, &models.Backdrop{Name: "Azure"}, gift.Background)
		b.AssertNotCalled(t, "ConstructorGift", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("constructor rejects path missing from the tree", func(t *testing.T) {
		s, b, cat, _ := newService()
		cat.On("Collection", mock.Anything, "Plush Pepe").Return(col, nil).Once()

		_, err := s.Resolve(ctx, ModeConstructor, Selection{Collection: "Plush Pepe", Model: "Silver", Backdrop: "Azure", Symbol: "Star"})
		assert.ErrorIs(t, err, ErrInvalidPath)
		b.AssertNotCalled(t, "ConstructorGift", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("constructor requires full selection", func(t *testing.T) {
		s, _, _, _ := newService()
		_, err := s.Resolve(ctx, ModeConstructor, Selection{Collection: "Plush Pepe", Model: "Gold"})
		assert.ErrorIs(t, err, ErrIncomplete)
	})

	t.Run("constructor resolves concrete gift", func(t *testing.T) {
		s, b, cat, c := newService()
		cat.On("Collection", mock.Anything, "Plush Pepe").Return(col, nil).Once()
		cat.On("Backdrops", mock.Anything).Return(palettes, nil).Once()
		b.On("ConstructorGift", mock.Anything, "Plush Pepe", "Gold", "Black", "Moon").
			Return(&models.ConstructorGift{GiftNumber: 2, Model: "Gold", Backdrop: "Black", Symbol: "Moon"}, nil).Once()

		stale := key("gift", "Plush Pepe", "Gold", "Black", "Star")
		require.NoError(t, c.Set(ctx, stale, models.ConstructorGift{GiftNumber: 1}, time.Hour))

		gift, err := s.Resolve(ctx, ModeConstructor, Selection{Collection: "Plush Pepe", Model: "Gold", Backdrop: "Black", Symbol: "Moon"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), gift.ID)
		assert.Equal(t, "Plush Pepe", gift.Name)
		assert.Equal(t, 99, gift.Background.CenterColor)

		var out models.ConstructorGift
		found, err := c.Get(ctx, stale, &out)
		require.NoError(t, err)
		assert.False(t, found, "gift family is invalidated after a fresh lookup")
	})

	t.Run("backend failure is returned", func(t *testing.T) {
		s, b, cat, _ := newService()
		cat.On("Collection", mock.Anything, "Plush Pepe").Return(col, nil).Once()
		b.On("ConstructorGift", mock.Anything, "Plush Pepe", "Gold", "Black", "Moon").Return(nil, errors.New("down")).Once()

		_, err := s.Resolve(ctx, ModeConstructor, Selection{Collection: "Plush Pepe", Model: "Gold", Backdrop: "Black", Symbol: "Moon"})
		assert.Error(t, err)
	})
}

func TestService_Options_ImageProxySetting(t *testing.T) {
	cat := &CatalogMock{}
	cat.On("Gifts", mock.Anything).Return([]string{"Plush Pepe"}, nil)
	s := New(&BackendMock{}, cat, cache.NewMemory(), time.Hour,
		giftcdn.New("", "https://gw.example/proxy/image/", true), newNoopLogger())

	proxied, err := s.Options(context.Background(), FieldGifts, ModeFreeform, Selection{})
	require.NoError(t, err)
	require.Len(t, proxied, 1)
	assert.Contains(t, proxied[0].Image, "https://gw.example/proxy/image/?url=")

	direct, err := s.Options(WithImageProxy(context.Background(), false), FieldGifts, ModeFreeform, Selection{})
	require.NoError(t, err)
	require.Len(t, direct, 1)
	assert.Contains(t, direct[0].Image, giftcdn.DefaultCDN)
	assert.NotContains(t, direct[0].Image, "gw.example")
}
