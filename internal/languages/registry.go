package languages

import (
	"fmt"
	"sort"
	"strings"

	"commentcleaner/internal/model"
)

// EmitFunc 接收扫描器闭合的每一条注释，调用是同步的。
type EmitFunc func(model.Comment)

// Scanner 定义单语言的可续扫词法状态机。
// 实现本身无状态，所有状态都保存在 Document 中，因此同一个 Scanner 可被多个 worker 共享。
type Scanner interface {
	// Scan 按顺序消费 chunk 中的全部字符，闭合的注释通过 emit 同步回调。
	// 对同一文件的连续调用，与把整个文件作为一个 chunk 调用的结果完全一致。
	Scan(doc *Document, chunk []rune, emit EmitFunc) error
	// Finish 处理文件结束：闭合行注释，并对未闭合结构返回 *UnterminatedError。
	// flush 为 true 时未闭合的块注释会作为最后一条注释输出。
	Finish(doc *Document, flush bool, emit EmitFunc) error
}

// Profile 描述一种语言：名称、文件匹配模式和扫描器。
type Profile interface {
	// Name 返回语言名称（例如 CSharp）。
	Name() string
	// Aliases 返回可用于命令行查找的别名。
	Aliases() []string
	// Pattern 返回文件名匹配 glob（例如 *.cs）。
	Pattern() string
	// Scanner 返回该语言的扫描器实例。
	Scanner() Scanner
}

// LanguageDescriptor 用于对外展示语言及匹配模式。
type LanguageDescriptor struct {
	Name    string
	Pattern string
	Aliases []string
}

// Registry 管理语言 profile 注册与名称映射。
type Registry struct {
	profiles      []Profile
	profileByName map[string]Profile
}

// NewRegistry 创建并注册所有内置语言。
func NewRegistry() *Registry {
	registry := &Registry{
		profileByName: make(map[string]Profile),
	}
	registry.Register(&CSharpProfile{})
	return registry
}

// Register 注册一个 profile，名称和别名均不区分大小写。
func (r *Registry) Register(profile Profile) {
	r.profiles = append(r.profiles, profile)
	r.profileByName[strings.ToLower(profile.Name())] = profile
	for _, alias := range profile.Aliases() {
		r.profileByName[strings.ToLower(alias)] = profile
	}
}

// Lookup 根据名称或别名查找 profile。
func (r *Registry) Lookup(name string) (Profile, error) {
	profile, ok := r.profileByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, name)
	}
	return profile, nil
}

// Languages 返回已注册语言清单。
func (r *Registry) Languages() []LanguageDescriptor {
	result := make([]LanguageDescriptor, 0, len(r.profiles))
	for _, profile := range r.profiles {
		aliases := append([]string(nil), profile.Aliases()...)
		sort.Strings(aliases)
		result = append(result, LanguageDescriptor{
			Name:    profile.Name(),
			Pattern: profile.Pattern(),
			Aliases: aliases,
		})
	}

	sort.Slice(result, func(i int, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}
