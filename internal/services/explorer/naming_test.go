package explorer

import (
	"regexp"
	"testing"
	"time"

	"github.com/3Eeeecho/go-fileportal/internal/models"
	"github.com/stretchr/testify/assert"
)

var safeName = regexp.MustCompile(`^[A-Za-z0-9._-]*$`)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Résumé (final).pdf", "Resume__final_.pdf"},
		{"report-2024_v2.tar.gz", "report-2024_v2.tar.gz"},
		{"naïve café.txt", "naive_cafe.txt"},
		{"日本語.doc", "___.doc"},
		{"a/b\\c.txt", "a_b_c.txt"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := SanitizeFileName(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Regexp(t, safeName, got)
		})
	}
}

func TestSanitizeFileNameOnlySafeRunes(t *testing.T) {
	inputs := []string{"Ωmega≈.bin", "tab\there", "emoji 😀.png", "Ångström.csv", `quote"d'.txt`}
	for _, in := range inputs {
		assert.Regexp(t, safeName, SanitizeFileName(in), in)
	}
}

func TestFileExtension(t *testing.T) {
	assert.Equal(t, "pdf", FileExtension("a.pdf"))
	assert.Equal(t, "gz", FileExtension("a.tar.gz"))
	assert.Equal(t, "", FileExtension("README"))
	assert.Equal(t, "", FileExtension("trailing."))
}

func TestBuildStoragePath(t *testing.T) {
	at := time.UnixMilli(1700000000123)

	assert.Equal(t,
		"alice@x.com/Resume__final_.pdf_v1_1700000000123.pdf",
		BuildStoragePath("alice@x.com", "Résumé (final).pdf", 1, at))
	assert.Equal(t,
		"bob@x.com/Makefile_v3_1700000000123",
		BuildStoragePath("bob@x.com", "Makefile", 3, at))
}

func TestObjectPath(t *testing.T) {
	withPath := &models.File{StoragePath: "a@x.com/f.txt_v1_1.txt", URL: "http://h/uploads/other"}
	assert.Equal(t, "a@x.com/f.txt_v1_1.txt", ObjectPath(withPath))

	legacy := &models.File{UploadedBy: "a@x.com", URL: "http://h/uploads/a%40x.com/my%20file_v2_5.txt"}
	assert.Equal(t, "a@x.com/my file_v2_5.txt", ObjectPath(legacy))
}
