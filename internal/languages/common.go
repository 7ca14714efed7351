package languages

import "strings"

// trimCarriageReturn 去除行注释末尾的 \r。
// 该函数适配 Windows 的 \r\n 与 Unix 的 \n。
func trimCarriageReturn(text string) string {
	return strings.TrimSuffix(text, "\r")
}
