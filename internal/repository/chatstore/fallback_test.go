package chatstore

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pathCase struct {
	name         string
	build        func(t *testing.T) (*FallbackStorage, *LocalStorage)
	storage      string
	primaryFails bool
}

func storagePaths() []pathCase {
	return []pathCase{
		{
			name: "remote available",
			build: func(t *testing.T) (*FallbackStorage, *LocalStorage) {
				l := newLocal()
				f, _ := newFallback(newRemote(t), l)
				return f, l
			},
			storage: string(StorageTypeRemote),
		},
		{
			name: "remote unavailable",
			build: func(t *testing.T) (*FallbackStorage, *LocalStorage) {
				l := newLocal()
				f, _ := newFallback(NewRemoteStorage(nil), l)
				return f, l
			},
			storage: string(StorageTypeLocal),
		},
		{
			name: "remote erroring",
			build: func(t *testing.T) (*FallbackStorage, *LocalStorage) {
				l := newLocal()
				f, _ := newFallback(&flakyStorage{Storage: newRemote(t), failing: true}, l)
				return f, l
			},
			storage:      string(StorageTypeLocal),
			primaryFails: true,
		},
		{
			name: "local only",
			build: func(t *testing.T) (*FallbackStorage, *LocalStorage) {
				l := newLocal()
				f, _ := newFallback(l, l)
				return f, l
			},
			storage: string(StorageTypeLocal),
		},
	}
}

func TestFallbackStorage_SaveThenLoad(t *testing.T) {
	for _, tc := range storagePaths() {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			f, _ := tc.build(t)

			used, err := f.Save(ctx, testSession("S1", "U1", "Test"), testMessage("m1", "S1", "U1", "Hello", baseTime))
			require.NoError(t, err)
			assert.Equal(t, tc.storage, used)

			conv, err := f.LoadSession(ctx, "S1", "U1")
			require.NoError(t, err)
			require.NotNil(t, conv)
			assert.Equal(t, "Test", conv.Session.SessionName)
			require.Len(t, conv.Messages, 1)
			assert.Equal(t, "user", string(conv.Messages[0].Role))
			assert.Equal(t, "Hello", conv.Messages[0].Content)
		})
	}
}

func TestFallbackStorage_MessagesOrderedWithoutDuplicates(t *testing.T) {
	for _, tc := range storagePaths() {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			f, _ := tc.build(t)
			session := testSession("S1", "U1", "Test")

			const n = 6
			// Insert in reverse time order and repeat every save once.
			for i := n - 1; i >= 0; i-- {
				msg := testMessage(fmt.Sprintf("m%d", i), "S1", "U1", fmt.Sprintf("msg %d", i), baseTime.Add(time.Duration(i)*time.Second))
				for j := 0; j < 2; j++ {
					_, err := f.Save(ctx, session, msg)
					require.NoError(t, err)
				}
			}

			conv, err := f.LoadSession(ctx, "S1", "U1")
			require.NoError(t, err)
			require.Len(t, conv.Messages, n)
			for i, m := range conv.Messages {
				assert.Equal(t, fmt.Sprintf("m%d", i), m.Id)
			}
		})
	}
}

func TestFallbackStorage_DeleteThenLoad(t *testing.T) {
	for _, tc := range storagePaths() {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			f, _ := tc.build(t)

			_, err := f.Save(ctx, testSession("S1", "U1", "Keep"), testMessage("m1", "S1", "U1", "hi", baseTime))
			require.NoError(t, err)
			_, err = f.Save(ctx, testSession("S2", "U1", "Drop"), testMessage("m2", "S2", "U1", "bye", baseTime))
			require.NoError(t, err)

			err = f.DeleteSession(ctx, "S2", "U1")
			if tc.primaryFails {
				assert.ErrorIs(t, err, errBoom)
			} else {
				require.NoError(t, err)
			}

			conv, err := f.LoadSession(ctx, "S2", "U1")
			require.NoError(t, err)
			assert.Nil(t, conv)

			sessions, err := f.ListSessions(ctx, "U1")
			require.NoError(t, err)
			require.Len(t, sessions, 1)
			assert.Equal(t, "S1", sessions[0].Id)

			_, err = f.Save(ctx, testSession("S2", "U1", "Again"), nil)
			assert.ErrorIs(t, err, ErrSessionDeleted)
		})
	}
}

func TestFallbackStorage_EmptyListIsNotNil(t *testing.T) {
	for _, tc := range storagePaths() {
		t.Run(tc.name, func(t *testing.T) {
			f, _ := tc.build(t)
			sessions, err := f.ListSessions(context.Background(), "nobody")
			require.NoError(t, err)
			assert.NotNil(t, sessions)
			assert.Empty(t, sessions)
		})
	}
}

func TestFallbackStorage_OwnershipIsNotMaskedByFallback(t *testing.T) {
	for _, tc := range storagePaths() {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			f, l := tc.build(t)

			_, err := f.Save(ctx, testSession("S1", "U1", "Mine"), nil)
			require.NoError(t, err)

			_, err = f.Save(ctx, testSession("S1", "U2", "Theirs"), nil)
			assert.ErrorIs(t, err, ErrSessionOwnership)

			stolen, err := l.LoadSession(ctx, "S1", "U2")
			require.NoError(t, err)
			assert.Nil(t, stolen)

			assert.ErrorIs(t, f.DeleteSession(ctx, "S1", "U2"), ErrSessionOwnership)
		})
	}
}

func TestFallbackStorage_UpdatedAtNeverMovesBackwards(t *testing.T) {
	for _, tc := range storagePaths() {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			f, _ := tc.build(t)

			newer := testSession("S1", "U1", "Newer")
			newer.UpdatedAt = baseTime.Add(time.Hour)
			_, err := f.Save(ctx, newer, nil)
			require.NoError(t, err)

			older := testSession("S1", "U1", "Older")
			older.CreatedAt = baseTime.Add(2 * time.Hour)
			older.UpdatedAt = baseTime.Add(time.Minute)
			_, err = f.Save(ctx, older, nil)
			require.NoError(t, err)

			conv, err := f.LoadSession(ctx, "S1", "U1")
			require.NoError(t, err)
			require.NotNil(t, conv)
			assert.Equal(t, "Older", conv.Session.SessionName)
			assert.True(t, conv.Session.UpdatedAt.Equal(baseTime.Add(time.Hour)))
			assert.True(t, conv.Session.CreatedAt.Equal(baseTime))
		})
	}
}

func TestFallbackStorage_ErroringPrimaryPublishesDegraded(t *testing.T) {
	ctx := context.Background()
	primary := &flakyStorage{Storage: newRemote(t), failing: true}
	f, events := newFallback(primary, newLocal())

	_, err := f.Save(ctx, testSession("S1", "U1", "Test"), nil)
	require.NoError(t, err)

	require.Len(t, events.degraded, 1)
	assert.Equal(t, degradedEvent{storage: string(StorageTypeRemote), operation: "save"}, events.degraded[0])
}

func TestFallbackStorage_LoadMergesOutageWrites(t *testing.T) {
	ctx := context.Background()
	primary := &flakyStorage{Storage: newRemote(t)}
	f, _ := newFallback(primary, newLocal())
	session := testSession("S1", "U1", "Test")

	_, err := f.Save(ctx, session, testMessage("m1", "S1", "U1", "first", baseTime))
	require.NoError(t, err)

	primary.setFailing(true)
	used, err := f.Save(ctx, session, testMessage("m2", "S1", "U1", "second", baseTime.Add(time.Second)))
	require.NoError(t, err)
	assert.Equal(t, string(StorageTypeLocal), used)

	primary.setFailing(false)
	conv, err := f.LoadSession(ctx, "S1", "U1")
	require.NoError(t, err)
	require.Len(t, conv.Messages, 2)
	assert.Equal(t, "first", conv.Messages[0].Content)
	assert.Equal(t, "second", conv.Messages[1].Content)

	sessions, err := f.ListSessions(ctx, "U1")
	require.NoError(t, err)
	assert.Len(t, sessions, 1)
}

func TestFallbackStorage_OutageKeepsRemoteOwnership(t *testing.T) {
	ctx := context.Background()
	primary := &flakyStorage{Storage: newRemote(t)}
	l := newLocal()
	f, _ := newFallback(primary, l)

	_, err := f.Save(ctx, testSession("S1", "U1", "Mine"), testMessage("m1", "S1", "U1", "hello", baseTime))
	require.NoError(t, err)

	primary.setFailing(true)

	t.Run("other user cannot write", func(t *testing.T) {
		_, err := f.Save(ctx, testSession("S1", "U2", "Taken"), nil)
		assert.ErrorIs(t, err, ErrSessionOwnership)

		_, err = f.Save(ctx, nil, testMessage("m2", "S1", "U2", "intruder", baseTime.Add(time.Second)))
		assert.ErrorIs(t, err, ErrSessionOwnership)

		conv, err := l.LoadSession(ctx, "S1", "U2")
		require.NoError(t, err)
		assert.Nil(t, conv)
	})

	t.Run("other user cannot delete", func(t *testing.T) {
		err := f.DeleteSession(ctx, "S1", "U2")
		assert.ErrorIs(t, err, ErrSessionOwnership)
	})

	t.Run("owner keeps writing locally", func(t *testing.T) {
		used, err := f.Save(ctx, testSession("S1", "U1", "Mine"), testMessage("m3", "S1", "U1", "still here", baseTime.Add(2*time.Second)))
		require.NoError(t, err)
		assert.Equal(t, string(StorageTypeLocal), used)
	})
}

func TestFallbackStorage_DeleteReportsReachablePrimaryFailure(t *testing.T) {
	ctx := context.Background()
	primary := &flakyStorage{Storage: newRemote(t)}
	l := newLocal()
	f, _ := newFallback(primary, l)

	_, err := f.Save(ctx, testSession("S1", "U1", "Test"), nil)
	require.NoError(t, err)

	primary.setFailing(true)
	err = f.DeleteSession(ctx, "S1", "U1")
	assert.ErrorIs(t, err, errBoom)

	// Local side is still tombstoned.
	assert.ErrorIs(t, l.SaveSession(ctx, testSession("S1", "U1", "Test")), ErrSessionDeleted)
}

func TestNew_SelectsPrimaryAndStatus(t *testing.T) {
	l := newLocal()

	remote, err := New(StorageTypeRemote, Deps{Local: l, Logger: nopLogger()})
	require.NoError(t, err)
	st := remote.Status()
	assert.Equal(t, StorageTypeRemote, st.Type)
	assert.False(t, st.Available)
	assert.Contains(t, st.Details, "local fallback")

	backend, err := New(StorageTypeBackend, Deps{Local: l, Backend: NewBackendStorage("http://api.test", "", 0), Logger: nopLogger()})
	require.NoError(t, err)
	assert.True(t, backend.Status().Available)
	assert.Equal(t, StorageTypeBackend, backend.Status().Type)

	localOnly, err := New(StorageTypeLocal, Deps{Local: l, Logger: nopLogger()})
	require.NoError(t, err)
	assert.Equal(t, StorageTypeLocal, localOnly.Status().Type)
	assert.True(t, localOnly.Status().Available)

	_, err = New("floppy", Deps{Local: l})
	assert.Error(t, err)
	_, err = New(StorageTypeLocal, Deps{})
	assert.Error(t, err)
}

func TestParseStorageType(t *testing.T) {
	st, err := ParseStorageType(" Backend ")
	require.NoError(t, err)
	assert.Equal(t, StorageTypeBackend, st)

	st, err = ParseStorageType("")
	require.NoError(t, err)
	assert.Equal(t, StorageTypeRemote, st)

	_, err = ParseStorageType("s3")
	assert.Error(t, err)
}
