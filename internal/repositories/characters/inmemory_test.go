package characters_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/celebi-bot/celebi/internal/entities"
	"github.com/celebi-bot/celebi/internal/repositories/characters"
)

type InMemoryCacheTestSuite struct {
	suite.Suite
	ctx   context.Context
	cache *characters.InMemoryCache
}

func (s *InMemoryCacheTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.cache = characters.NewInMemoryCache(2, time.Minute)
}

func TestInMemoryCacheTestSuite(t *testing.T) {
	suite.Run(t, new(InMemoryCacheTestSuite))
}

func (s *InMemoryCacheTestSuite) TestPutGet() {
	char := &entities.Character{
		ID:               45,
		Username:         "Bryn Vaughn",
		PersonalComputer: entities.PersonalComputer{{ID: 282, Name: "Gardevoir"}},
	}

	s.Require().NoError(s.cache.Put(s.ctx, char))

	got, ok := s.cache.Get(s.ctx, 45)
	s.Require().True(ok)
	s.Equal(char, got)

	_, ok = s.cache.Get(s.ctx, 46)
	s.False(ok)
}

func (s *InMemoryCacheTestSuite) TestCopiesAreIsolated() {
	char := &entities.Character{
		ID:               45,
		PersonalComputer: entities.PersonalComputer{{ID: 282, Name: "Gardevoir"}},
	}
	s.Require().NoError(s.cache.Put(s.ctx, char))

	// mutate the original and a returned copy; neither may leak into the cache
	char.PersonalComputer[0].Name = "Ralts"
	got, _ := s.cache.Get(s.ctx, 45)
	got.PersonalComputer.Add(entities.Pokemon{ID: 448, Name: "Lucario"})

	again, ok := s.cache.Get(s.ctx, 45)
	s.Require().True(ok)
	s.Require().Len(again.PersonalComputer, 1)
	s.Equal("Gardevoir", again.PersonalComputer[0].Name)
}

func (s *InMemoryCacheTestSuite) TestEvictsLeastRecentlyUsed() {
	for _, id := range []int{1, 2} {
		s.Require().NoError(s.cache.Put(s.ctx, &entities.Character{ID: id}))
	}

	// touch 1 so 2 becomes the eviction candidate
	_, ok := s.cache.Get(s.ctx, 1)
	s.Require().True(ok)

	s.Require().NoError(s.cache.Put(s.ctx, &entities.Character{ID: 3}))

	s.Equal(2, s.cache.Len())
	_, ok = s.cache.Get(s.ctx, 2)
	s.False(ok)
	_, ok = s.cache.Get(s.ctx, 1)
	s.True(ok)
	_, ok = s.cache.Get(s.ctx, 3)
	s.True(ok)
}

func (s *InMemoryCacheTestSuite) TestExpires() {
	cache := characters.NewInMemoryCache(10, 20*time.Millisecond)
	s.Require().NoError(cache.Put(s.ctx, &entities.Character{ID: 45}))

	_, ok := cache.Get(s.ctx, 45)
	s.Require().True(ok)

	s.Eventually(func() bool {
		_, ok := cache.Get(s.ctx, 45)
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func (s *InMemoryCacheTestSuite) TestDelete() {
	s.Require().NoError(s.cache.Put(s.ctx, &entities.Character{ID: 45}))
	s.Require().NoError(s.cache.Delete(s.ctx, 45))

	_, ok := s.cache.Get(s.ctx, 45)
	s.False(ok)
}

func (s *InMemoryCacheTestSuite) TestPutRejectsInvalid() {
	s.Error(s.cache.Put(s.ctx, nil))
	s.Error(s.cache.Put(s.ctx, &entities.Character{}))
}

func (s *InMemoryCacheTestSuite) TestDefaults() {
	cache := characters.NewInMemoryCache(0, 0)
	for id := 1; id <= characters.DefaultCacheSize+1; id++ {
		s.Require().NoError(cache.Put(s.ctx, &entities.Character{ID: id}))
	}
	s.Equal(characters.DefaultCacheSize, cache.Len())
}
