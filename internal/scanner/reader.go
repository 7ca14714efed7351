package scanner

import (
	"bufio"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// newDecodingReader 根据 BOM 自动识别 UTF-8/UTF-16LE/UTF-16BE，没有 BOM 时按 UTF-8 解码。
// 非法字节会被替换为 U+FFFD。
func newDecodingReader(reader io.Reader) *bufio.Reader {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	return bufio.NewReader(transform.NewReader(reader, decoder))
}

// readChunk 读取最多 len(buffer) 个字符。
// 返回 io.EOF 时 n 可能大于 0，调用方需要先处理已读字符。
func readChunk(reader *bufio.Reader, buffer []rune) (int, error) {
	n := 0
	for n < len(buffer) {
		r, _, err := reader.ReadRune()
		if err != nil {
			return n, err
		}
		buffer[n] = r
		n++
	}
	return n, nil
}
