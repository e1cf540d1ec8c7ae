package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStorage is an in-memory backend with switchable failure modes.
type fakeStorage struct {
	name     string
	objects  map[string][]byte
	failSave bool
	failDel  bool
}

func newFakeStorage(name string) *fakeStorage {
	return &fakeStorage{name: name, objects: map[string][]byte{}}
}

func (f *fakeStorage) Name() string { return f.name }

func (f *fakeStorage) Save(ctx context.Context, path string, reader io.Reader, contentType string) error {
	if f.failSave {
		return errors.New("save refused")
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	f.objects[path] = data
	return nil
}

func (f *fakeStorage) Get(ctx context.Context, path string) (io.ReadCloser, error) {
	data, ok := f.objects[path]
	if !ok {
		return nil, errors.New("not found")
	}
	return io.NopCloser(strings.NewReader(string(data))), nil
}

func (f *fakeStorage) Delete(ctx context.Context, path string) error {
	if f.failDel {
		return errors.New("delete refused")
	}
	delete(f.objects, path)
	return nil
}

func (f *fakeStorage) Exists(ctx context.Context, path string) (bool, error) {
	_, ok := f.objects[path]
	return ok, nil
}

func (f *fakeStorage) GetURL(ctx context.Context, path string) (string, error) {
	return "https://" + f.name + ".example.com/" + path, nil
}

func (f *fakeStorage) GetSize(ctx context.Context, path string) (int64, error) {
	data, ok := f.objects[path]
	if !ok {
		return 0, errors.New("not found")
	}
	return int64(len(data)), nil
}

func TestChainSavePrimarySucceeds(t *testing.T) {
	primary := newFakeStorage("primary")
	fallback := newFakeStorage("fallback")
	chain, err := NewChain(primary, fallback)
	require.NoError(t, err)

	err = chain.Save(context.Background(), "photos/wedding/a.jpg", strings.NewReader("bytes"), "image/jpeg")
	require.NoError(t, err)

	// Exactly one copy survives, on the primary
	assert.Contains(t, primary.objects, "photos/wedding/a.jpg")
	assert.NotContains(t, fallback.objects, "photos/wedding/a.jpg")
}

func TestChainSaveFallsBack(t *testing.T) {
	primary := newFakeStorage("primary")
	primary.failSave = true
	fallback := newFakeStorage("fallback")
	chain, err := NewChain(primary, fallback)
	require.NoError(t, err)

	err = chain.Save(context.Background(), "photos/wedding/a.jpg", strings.NewReader("bytes"), "image/jpeg")
	require.NoError(t, err)

	assert.NotContains(t, primary.objects, "photos/wedding/a.jpg")
	assert.Equal(t, []byte("bytes"), fallback.objects["photos/wedding/a.jpg"])
}

func TestChainSaveAllFail(t *testing.T) {
	primary := newFakeStorage("primary")
	primary.failSave = true
	fallback := newFakeStorage("fallback")
	fallback.failSave = true
	chain, err := NewChain(primary, fallback)
	require.NoError(t, err)

	err = chain.Save(context.Background(), "x.jpg", strings.NewReader("bytes"), "image/jpeg")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "all storage backends failed")
}

func TestChainDeleteFromHoldingBackend(t *testing.T) {
	primary := newFakeStorage("primary")
	fallback := newFakeStorage("fallback")
	fallback.objects["v.mp4"] = []byte("clip")
	chain, err := NewChain(primary, fallback)
	require.NoError(t, err)

	require.NoError(t, chain.Delete(context.Background(), "v.mp4"))
	assert.NotContains(t, fallback.objects, "v.mp4")
}

func TestChainDeleteMissingIsNoError(t *testing.T) {
	chain, err := NewChain(newFakeStorage("primary"), newFakeStorage("fallback"))
	require.NoError(t, err)

	assert.NoError(t, chain.Delete(context.Background(), "never-uploaded.jpg"))
}

func TestChainGetURLPrefersHoldingBackend(t *testing.T) {
	primary := newFakeStorage("primary")
	fallback := newFakeStorage("fallback")
	fallback.objects["a.jpg"] = []byte("x")
	chain, err := NewChain(primary, fallback)
	require.NoError(t, err)

	url, err := chain.GetURL(context.Background(), "a.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://fallback.example.com/a.jpg", url)

	// An orphaned path resolves through the primary's URL scheme
	url, err = chain.GetURL(context.Background(), "gone.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://primary.example.com/gone.jpg", url)
}

func TestNewChainRequiresBackend(t *testing.T) {
	_, err := NewChain()
	assert.Error(t, err)
}
