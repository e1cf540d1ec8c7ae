package mediatype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		filename string
		want     Kind
	}{
		{"wedding_shot.jpg", KindPhoto},
		{"portrait.JPEG", KindPhoto},
		{"scan.png", KindPhoto},
		{"animation.gif", KindPhoto},
		{"modern.webp", KindPhoto},
		{"old.bmp", KindPhoto},
		{"raw_scan.tiff", KindPhoto},
		{"ceremony.mp4", KindVideo},
		{"clip.AVI", KindVideo},
		{"reel.mov", KindVideo},
		{"legacy.wmv", KindVideo},
		{"flash.flv", KindVideo},
		{"web_clip.webm", KindVideo},
		{"full_event.mkv", KindVideo},
		{"notes.txt", KindUnsupported},
		{"contract.pdf", KindUnsupported},
		{"archive.zip", KindUnsupported},
		{"noextension", KindUnsupported},
		{"", KindUnsupported},
		{"photo.jpg.exe", KindUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.filename))
		})
	}
}

func TestExt(t *testing.T) {
	assert.Equal(t, "jpg", Ext("Holiday_2024.JPG"))
	assert.Equal(t, "mp4", Ext("dir/clip.mp4"))
	assert.Equal(t, "", Ext("noextension"))
}
