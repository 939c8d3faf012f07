package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugaemi/mazechase-server/internal/game"
)

func newSession() *game.Session {
	return game.NewSession(game.PredefinedLevels(), game.NewMazeGenerator(1))
}

func TestManager_CreateAndFind(t *testing.T) {
	m := NewManager(testInterval)
	c := mockClient("c1")

	r := m.CreateRoom(c, newSession())
	require.NotNil(t, r)
	assert.Len(t, r.Code, codeLength)
	assert.Same(t, r, m.GetRoom(r.Code))
	assert.Same(t, r, m.FindRoomByClientID("c1"))
	assert.Same(t, c, r.Client())
	assert.Equal(t, 1, m.RoomCount())
	assert.Nil(t, m.FindRoomByClientID("nobody"))
}

func TestManager_CreateReplacesClientRoom(t *testing.T) {
	m := NewManager(testInterval)
	c := mockClient("c1")

	first := m.CreateRoom(c, newSession())
	second := m.CreateRoom(c, newSession())

	assert.NotSame(t, first, second)
	assert.Equal(t, 1, m.RoomCount())
	assert.Same(t, second, m.FindRoomByClientID("c1"))

	select {
	case <-first.stopCh:
	default:
		t.Fatal("replaced room should be stopped")
	}
}

func TestManager_RemoveRoom(t *testing.T) {
	m := NewManager(testInterval)
	r := m.CreateRoom(mockClient("c1"), newSession())
	m.CreateRoom(mockClient("c2"), newSession())

	m.RemoveRoom("c1")
	m.RemoveRoom("c1")

	assert.Equal(t, 1, m.RoomCount())
	assert.Nil(t, m.GetRoom(r.Code))
	assert.Nil(t, m.FindRoomByClientID("c1"))
}

func TestManager_StopAll(t *testing.T) {
	m := NewManager(testInterval)
	r1 := m.CreateRoom(mockClient("c1"), newSession())
	r2 := m.CreateRoom(mockClient("c2"), newSession())

	m.StopAll()
	assert.Equal(t, 0, m.RoomCount())
	assert.Nil(t, m.FindRoomByClientID("c2"))
	for _, r := range []*Room{r1, r2} {
		select {
		case <-r.stopCh:
		default:
			t.Fatalf("room %s still running", r.Code)
		}
	}
}

func TestGenerateCode(t *testing.T) {
	code := GenerateCode(nil)
	assert.Len(t, code, codeLength)
	for _, ch := range code {
		assert.Contains(t, string(codeAlphabet), string(ch))
	}
}

func TestGenerateCode_AvoidsExisting(t *testing.T) {
	existing := make(map[string]bool)
	for i := 0; i < 500; i++ {
		code := GenerateCode(existing)
		require.False(t, existing[code], "duplicate code %s", code)
		existing[code] = true
	}
}
