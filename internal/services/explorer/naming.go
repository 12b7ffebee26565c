package explorer

import (
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode"

	"github.com/3Eeeecho/go-fileportal/internal/models"
	"golang.org/x/text/unicode/norm"
)

// SanitizeFileName 生成只包含 [A-Za-z0-9._-] 的文件名, 只用于存储路径
// 先做 NFD 分解并去掉附加符号 (é -> e), 其余字符替换为 _
func SanitizeFileName(name string) string {
	decomposed := norm.NFD.String(name)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		if isSafeRune(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

func isSafeRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '.', r == '_', r == '-':
		return true
	}
	return false
}

// FileExtension 返回最后一个 . 之后的部分, 没有扩展名时返回空串
func FileExtension(name string) string {
	idx := strings.LastIndexByte(name, '.')
	if idx < 0 || idx == len(name)-1 {
		return ""
	}
	return name[idx+1:]
}

// BuildStoragePath 生成 <email>/<sanitized>_v<version>_<millis>.<ext>
// 时间戳保证即使版本号冲突路径也不重复
func BuildStoragePath(ownerEmail, originalName string, version uint, at time.Time) string {
	sanitized := SanitizeFileName(originalName)
	p := fmt.Sprintf("%s/%s_v%d_%d", ownerEmail, sanitized, version, at.UnixMilli())
	if ext := FileExtension(sanitized); ext != "" {
		p += "." + ext
	}
	return p
}

// ObjectPath 返回文件记录对应的存储路径
// 旧记录没有 storage_path, 用 <uploaded_by>/<URL 最后一段> 推导
func ObjectPath(file *models.File) string {
	if file.StoragePath != "" {
		return file.StoragePath
	}
	segment := file.URL
	if idx := strings.LastIndexByte(segment, '/'); idx >= 0 {
		segment = segment[idx+1:]
	}
	if unescaped, err := url.PathUnescape(segment); err == nil {
		segment = unescaped
	}
	return file.UploadedBy + "/" + segment
}
