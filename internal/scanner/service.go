// Package scanner 提供并发扫描调度能力。
// 该层负责目录遍历、任务分片、并发执行和结果聚合，不负责词法细节。
package scanner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"sort"
	"time"

	"commentcleaner/internal/classifier"
	"commentcleaner/internal/languages"
	"commentcleaner/internal/model"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultWorkers 是默认 worker 数量。
	DefaultWorkers = 8
	// DefaultChunkSize 是每次读取的字符数（解码后）。
	DefaultChunkSize = 8 * 1024
	// shardCapacity 是每个分片队列的缓冲长度。
	shardCapacity = 64
)

// Sharding 决定文件如何分配给 worker。
type Sharding string

const (
	// ShardingRoundRobin 按发现顺序轮询分配到各 worker 的专属队列（静态分配）。
	ShardingRoundRobin Sharding = "round-robin"
	// ShardingShared 所有 worker 共用一个队列，空闲 worker 会领取下一个文件。
	ShardingShared Sharding = "shared"
)

// Reporter 接收需要输出的注释记录，实现必须支持并发调用。
type Reporter interface {
	Report(report model.CommentReport) error
}

// Progress 在每个文件处理结束后被调用，调用只发生在单个汇总 goroutine 中。
type Progress interface {
	FileDone(path string)
}

// Options 是一次扫描的全部参数。
type Options struct {
	Root       string
	Profile    languages.Profile
	Workers    int
	Exclude    *regexp.Regexp
	ChunkSize  int
	FlushOnEOF bool
	Sharding   Sharding
	// ReportAll 为 true 时输出全部注释（profile 模式），否则只输出被标记的注释。
	ReportAll  bool
	Classifier *classifier.Classifier
	Logger     *slog.Logger
	Progress   Progress
}

// Service 是扫描服务对象。
type Service struct {
	options Options
	logger  *slog.Logger
}

// fileOutcome 表示 worker 处理一个文件的产物。
type fileOutcome struct {
	path    string
	metrics model.FileMetrics
	failure *model.ScanError
	warning *model.ScanError
	// scanned 为 false 表示来自目录遍历的错误，而不是某个文件的扫描结果。
	scanned bool
}

// NewService 创建扫描服务，并为未设置的参数填充默认值。
func NewService(options Options) *Service {
	if options.Workers <= 0 {
		options.Workers = DefaultWorkers
	}
	if options.ChunkSize <= 0 {
		options.ChunkSize = DefaultChunkSize
	}
	if options.Sharding == "" {
		options.Sharding = ShardingRoundRobin
	}
	if options.Classifier == nil {
		options.Classifier = classifier.New(classifier.Options{})
	}

	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Service{
		options: options,
		logger:  logger,
	}
}

// Run 执行一次完整扫描。
// 只有在目录遍历和全部 worker 都结束后才返回，Elapsed 覆盖整个过程。
// 单文件错误不会中断扫描；ctx 取消或 reporter 写入失败会中断并返回错误。
func (s *Service) Run(ctx context.Context, reporter Reporter) (model.ScanResult, error) {
	start := time.Now()

	result := model.ScanResult{
		RunID:     uuid.NewString(),
		Root:      s.options.Root,
		Threshold: s.options.Classifier.Threshold(),
		Errors:    make([]model.ScanError, 0),
		Warnings:  make([]model.ScanError, 0),
	}
	if s.options.Profile == nil {
		return result, errors.New("language profile is required")
	}
	result.Language = s.options.Profile.Name()

	logger := s.logger.With(
		"run_id", result.RunID,
		"root", s.options.Root,
		"language", result.Language,
		"workers", s.options.Workers,
	)

	finder, err := newDiscovery(s.options.Root, s.options.Profile.Pattern(), s.options.Exclude, logger)
	if err != nil {
		return result, err
	}

	logger.Info("scan started", "sharding", string(s.options.Sharding))

	queues := s.makeQueues()
	results := make(chan fileOutcome, s.options.Workers*4)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		defer func() {
			for _, queue := range queues {
				close(queue)
			}
		}()
		return s.dispatch(groupCtx, finder, queues, results)
	})

	for i := 0; i < s.options.Workers; i++ {
		queue := queues[i%len(queues)]
		group.Go(func() error {
			return s.runWorker(groupCtx, queue, results, reporter, logger)
		})
	}

	waitErr := make(chan error, 1)
	go func() {
		err := group.Wait()
		close(results)
		waitErr <- err
	}()

	for item := range results {
		if item.scanned && s.options.Progress != nil {
			s.options.Progress.FileDone(item.path)
		}
		if item.failure != nil {
			result.Totals.Failed++
			result.Errors = append(result.Errors, *item.failure)
			continue
		}
		if item.warning != nil {
			result.Totals.Warnings++
			result.Warnings = append(result.Warnings, *item.warning)
		}
		result.Totals.AddFile(item.metrics)
	}

	runErr := <-waitErr

	sortByPath(result.Errors)
	sortByPath(result.Warnings)

	result.Elapsed = time.Since(start)
	result.ElapsedMillis = result.Elapsed.Milliseconds()

	logger.Info("scan finished",
		"files", result.Totals.Files,
		"comments", result.Totals.Comments,
		"flagged", result.Totals.Flagged,
		"failed", result.Totals.Failed,
		"elapsed", result.Elapsed,
	)

	if runErr != nil {
		return result, runErr
	}
	return result, nil
}

// makeQueues 根据分片策略创建队列：轮询模式每个 worker 一个，共享模式只有一个。
func (s *Service) makeQueues() []chan string {
	count := s.options.Workers
	if s.options.Sharding == ShardingShared {
		count = 1
	}

	queues := make([]chan string, count)
	for i := range queues {
		queues[i] = make(chan string, shardCapacity)
	}
	return queues
}

// dispatch 遍历目录并按发现顺序把文件推入分片队列。
func (s *Service) dispatch(ctx context.Context, finder *discovery, queues []chan string, results chan<- fileOutcome) error {
	next := 0
	visit := func(path string) error {
		queue := queues[next%len(queues)]
		next++

		select {
		case queue <- path:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	fail := func(path string, err error) {
		results <- fileOutcome{
			path:    path,
			failure: newScanError(path, model.ErrorKindIO, err),
		}
	}

	return finder.walk(ctx, visit, fail)
}

// runWorker 从自己的队列中领取文件，直到队列关闭并清空。
func (s *Service) runWorker(
	ctx context.Context,
	queue <-chan string,
	results chan<- fileOutcome,
	reporter Reporter,
	logger *slog.Logger,
) error {
	buffer := make([]rune, s.options.ChunkSize)
	scanner := s.options.Profile.Scanner()

	for {
		var path string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case next, ok := <-queue:
			if !ok {
				return nil
			}
			path = next
		}

		outcome, err := s.scanFile(ctx, scanner, path, buffer, reporter)
		if err != nil {
			return err
		}

		switch {
		case outcome.failure != nil:
			logger.Error("file abandoned", "path", path, "kind", string(outcome.failure.Kind), "error", outcome.failure.Error)
		case outcome.warning != nil:
			logger.Warn("unterminated construct", "path", path, "error", outcome.warning.Error)
		default:
			logger.Debug("file scanned", "path", path, "comments", outcome.metrics.Comments, "flagged", outcome.metrics.Flagged)
		}

		results <- outcome
	}
}

// scanFile 以流式分块的方式扫描单个文件。
// 返回的 error 只用于中断整个扫描（取消或输出失败），单文件问题记录在 outcome 中。
func (s *Service) scanFile(
	ctx context.Context,
	scanner languages.Scanner,
	path string,
	buffer []rune,
	reporter Reporter,
) (fileOutcome, error) {
	outcome := fileOutcome{path: path, scanned: true}

	file, err := os.Open(path)
	if err != nil {
		outcome.failure = newScanError(path, model.ErrorKindIO, err)
		return outcome, nil
	}
	defer file.Close()

	doc := languages.NewDocument(path)
	reader := newDecodingReader(file)

	var reportErr error
	emit := func(comment model.Comment) {
		if reportErr != nil {
			return
		}

		outcome.metrics.Comments++
		verdict := s.options.Classifier.Classify(comment.Text)
		if verdict.Flagged {
			outcome.metrics.Flagged++
		}
		if !verdict.Flagged && !s.options.ReportAll {
			return
		}

		reportErr = reporter.Report(model.CommentReport{
			Path:      path,
			StartLine: comment.StartLine,
			EndLine:   comment.EndLine,
			Score:     verdict.Score.Value,
			Flagged:   verdict.Flagged,
			Rules:     verdict.Score.Rules,
			Text:      comment.Text,
		})
	}

	for {
		if err := ctx.Err(); err != nil {
			return outcome, err
		}

		n, readErr := readChunk(reader, buffer)
		if n > 0 {
			scanErr := scanner.Scan(doc, buffer[:n], emit)
			if reportErr != nil {
				return outcome, fmt.Errorf("report comment: %w", reportErr)
			}
			if scanErr != nil {
				outcome.failure = newScanError(path, model.ErrorKindScanner, scanErr)
				return outcome, nil
			}
		}

		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			outcome.failure = newScanError(path, model.ErrorKindIO, readErr)
			return outcome, nil
		}
	}

	finishErr := scanner.Finish(doc, s.options.FlushOnEOF, emit)
	if reportErr != nil {
		return outcome, fmt.Errorf("report comment: %w", reportErr)
	}

	var unterminated *languages.UnterminatedError
	switch {
	case finishErr == nil:
	case errors.As(finishErr, &unterminated):
		outcome.warning = newScanError(path, model.ErrorKindUnterminated, finishErr)
	default:
		outcome.failure = newScanError(path, model.ErrorKindScanner, finishErr)
	}

	return outcome, nil
}

func newScanError(path string, kind model.ErrorKind, err error) *model.ScanError {
	return &model.ScanError{
		Path:  path,
		Kind:  kind,
		Error: err.Error(),
	}
}

func sortByPath(items []model.ScanError) {
	sort.SliceStable(items, func(i int, j int) bool {
		return items[i].Path < items[j].Path
	})
}
