package catalog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePhotoAgreesWithParser(t *testing.T) {
	dataDir := t.TempDir()
	writeItem(t, dataDir, "Summer Collection", "Travel Mug", validDetails(), "front.jpg")

	repo := NewRepository(dataDir)

	// the id computed by the parser must resolve through the slug
	// re-derivation path
	for _, p := range repo.AllProducts() {
		path, err := repo.ResolvePhoto(p.ID, "front.jpg")
		require.NoError(t, err)
		assert.Equal(t,
			filepath.Join(dataDir, CollectionsDir, "Summer Collection", "Travel Mug", "Photos", "front.jpg"),
			path)
	}
}

func TestResolvePhotoMisses(t *testing.T) {
	dataDir := t.TempDir()
	writeItem(t, dataDir, "Mugs", "Travel Mug", validDetails(), "front.jpg")

	repo := NewRepository(dataDir)

	_, err := repo.ResolvePhoto("mugs-travel-mug", "back.jpg")
	assert.Error(t, err, "unknown filename")

	_, err = repo.ResolvePhoto("mugs-unknown", "front.jpg")
	assert.Error(t, err, "unknown product id")

	_, err = repo.ResolvePhoto("hats-travel-mug", "front.jpg")
	assert.Error(t, err, "unknown collection")
}

func TestIsImageFile(t *testing.T) {
	assert.True(t, IsImageFile("a.jpg"))
	assert.True(t, IsImageFile("a.JPEG"))
	assert.True(t, IsImageFile("a.webp"))
	assert.False(t, IsImageFile("a.txt"))
	assert.False(t, IsImageFile("a"))
	assert.False(t, IsImageFile("a.svg"), "svg is for logos, not product photos")
}

func TestContentTypeByExt(t *testing.T) {
	assert.Equal(t, "image/jpeg", ContentTypeByExt("x.jpg"))
	assert.Equal(t, "image/jpeg", ContentTypeByExt("x.JPEG"))
	assert.Equal(t, "image/gif", ContentTypeByExt("x.gif"))
	assert.Equal(t, "image/webp", ContentTypeByExt("x.webp"))
	assert.Equal(t, "image/svg+xml", ContentTypeByExt("x.svg"))
	assert.Equal(t, "image/x-icon", ContentTypeByExt("x.ico"))
	assert.Equal(t, "image/png", ContentTypeByExt("x.png"))
	assert.Equal(t, "image/png", ContentTypeByExt("x.unknown"))
}

func TestProductImageURL(t *testing.T) {
	assert.Equal(t,
		"/api/images/products/mugs-travel-mug/front.jpg",
		ProductImageURL("mugs-travel-mug", "front.jpg"))
}
