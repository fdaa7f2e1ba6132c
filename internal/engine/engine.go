package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ivlev/note2video/internal/classify"
	"github.com/ivlev/note2video/internal/config"
	"github.com/ivlev/note2video/internal/extract"
	"github.com/ivlev/note2video/internal/render"
	"github.com/ivlev/note2video/internal/sim"
	"github.com/ivlev/note2video/internal/system"
	"github.com/ivlev/note2video/internal/video"
)

// ErrUnsupportedCategory reports note text whose dominant subject has no
// animation model. The classifier result rides along in the message.
var ErrUnsupportedCategory = errors.New("note category has no animation model")

// Pipeline прогоняет текст заметки через все стадии: классификация,
// извлечение операций, симуляция, рендеринг и сборка видео.
type Pipeline struct {
	Config    *config.Config
	Styles    *render.StyleCache
	Assembler video.Assembler
	// Table, when set, replaces the built-in classifier vocabulary.
	Table classify.Table
}

func NewPipeline(cfg *config.Config, styles *render.StyleCache, asm video.Assembler) *Pipeline {
	return &Pipeline{Config: cfg, Styles: styles, Assembler: asm}
}

// Result summarizes one finished run.
type Result struct {
	JobID          string
	Category       classify.Result
	Kind           extract.Kind
	Seeded         bool
	Snapshots      []sim.Snapshot
	OutputVideo    string
	TranscriptPath string
	Duration       float64
}

// frameTask is one frame of the plan: which snapshot to draw, with which
// annotation, and how long it stays on screen.
type frameTask struct {
	snap sim.Snapshot
	ann  render.FrameAnnotation
	hold float64
}

func (p *Pipeline) Run(ctx context.Context, text string) (*Result, error) {
	startTime := time.Now()
	cfg := p.Config

	res := &Result{JobID: uuid.NewString()}

	// 1. Классификация
	table := p.Table
	if table == nil {
		table = classify.DefaultTable()
	}
	res.Category = classify.ClassifyWith(table, text)
	fmt.Printf("[*] Категория: %s (score %d)\n", res.Category.Category, res.Category.Scores[res.Category.Category])
	if res.Category.Category != classify.DataStructures {
		return res, fmt.Errorf("%w: %s", ErrUnsupportedCategory, res.Category.Category)
	}

	// 2. Извлечение операций
	kind, ops := extract.Extract(text)
	res.Kind = kind
	if len(ops) == 0 {
		ops = extract.SeedSequence(kind, text)
		res.Seeded = true
		fmt.Printf("[!] Операции не распознаны, используется демонстрационная последовательность (%s)\n", kind)
	}
	fmt.Printf("[*] Структура: %s | Операций: %d\n", kind, len(ops))

	// 3. Симуляция
	snaps, err := sim.Run(ops)
	if err != nil {
		return res, err
	}
	res.Snapshots = snaps

	// 4. План кадров
	tasks := p.planFrames(snaps)

	// 5. Параллельный рендеринг
	renderStart := time.Now()
	frames, err := p.renderFrames(ctx, tasks)
	if err != nil {
		return res, err
	}
	renderTime := time.Since(renderStart)

	if cfg.QRLink != "" {
		if err := render.StampQR(frames[len(frames)-1].Image, cfg.QRLink); err != nil {
			return res, err
		}
	}

	// 6. Аудио
	audioDuration := 0.0
	if cfg.AudioPath != "" && cfg.AudioSync {
		audioDuration, err = system.GetAudioDuration(cfg.AudioPath)
		if err != nil {
			return res, fmt.Errorf("длительность аудио %s: %w", cfg.AudioPath, err)
		}
		fmt.Printf("[*] Аудио: %s (%.2fs)\n", cfg.AudioPath, audioDuration)
	}

	// 7. Сборка
	fmt.Println("[*] Сборка финального видео...")
	encodeStart := time.Now()
	job := video.Job{
		ID:            res.JobID,
		Frames:        frames,
		FPS:           cfg.FPS,
		Width:         cfg.Width,
		Height:        cfg.Height,
		AudioPath:     cfg.AudioPath,
		AudioDuration: audioDuration,
		OutputPath:    cfg.OutputVideo,
		Encoder:       cfg.VideoEncoder,
		Quality:       cfg.Quality,
	}
	if err := p.Assembler.Assemble(ctx, job); err != nil {
		return res, err
	}
	encodeTime := time.Since(encodeStart)

	res.OutputVideo = cfg.OutputVideo
	res.Duration = plannedSeconds(tasks, cfg.FPS, audioDuration)

	// 8. Транскрипт
	res.TranscriptPath = strings.TrimSuffix(cfg.OutputVideo, ".mp4") + ".transcript.txt"
	if err := writeTranscript(res.TranscriptPath, res); err != nil {
		fmt.Printf("[!] Не удалось записать транскрипт: %v\n", err)
		res.TranscriptPath = ""
	}

	fmt.Printf("[+++] Успех! Видео сохранено: %s (%.1fs)\n", res.OutputVideo, res.Duration)

	if cfg.ShowStats {
		p.reportStats(res, len(frames), time.Since(startTime), renderTime, encodeTime)
	}
	return res, nil
}

// planFrames maps snapshots to frames: for every operation one frame of the
// prior state announcing it, then one frame of the outcome. The opening and
// closing holds are folded into the first and last frame.
func (p *Pipeline) planFrames(snaps []sim.Snapshot) []frameTask {
	cfg := p.Config
	steps := len(snaps) - 1

	tasks := make([]frameTask, 0, 2*steps+1)
	tasks = append(tasks, frameTask{
		snap: snaps[0],
		ann:  render.FrameAnnotation{StepInfo: fmt.Sprintf("step 0 of %d", steps)},
		hold: cfg.IntroHold,
	})
	for i := 1; i < len(snaps); i++ {
		info := fmt.Sprintf("step %d of %d", i, steps)
		tasks = append(tasks,
			frameTask{
				snap: snaps[i-1],
				ann:  render.FrameAnnotation{Pending: snaps[i].Op, StepInfo: info},
				hold: cfg.PreHold,
			},
			frameTask{
				snap: snaps[i],
				ann:  render.FrameAnnotation{StepInfo: info},
				hold: cfg.PostHold,
			},
		)
	}
	tasks[len(tasks)-1].hold += cfg.OutroHold
	return tasks
}

// renderFrames draws all planned frames with a bounded worker pool and
// returns them in plan order.
func (p *Pipeline) renderFrames(ctx context.Context, tasks []frameTask) ([]video.FrameSpec, error) {
	cfg := p.Config
	workers := cfg.Workers
	if workers < 1 {
		workers = system.DefaultWorkers()
	}

	frames := make([]video.FrameSpec, len(tasks))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range tasks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r := render.NewRenderer(cfg.Width, cfg.Height, p.Styles)
			img, err := r.Render(tasks[i].snap, tasks[i].ann)
			if err != nil {
				return err
			}
			frames[i] = video.FrameSpec{Index: i, Image: img, Hold: tasks[i].hold}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		for _, f := range frames {
			if f.Image != nil {
				system.PutImage(f.Image)
			}
		}
		return nil, err
	}
	return frames, nil
}

func plannedSeconds(tasks []frameTask, fps int, audioDuration float64) float64 {
	holds := make([]float64, len(tasks))
	for i, t := range tasks {
		holds[i] = t.hold
	}
	return video.PlannedDuration(video.ExpandPlan(holds, fps, audioDuration), fps)
}

// writeTranscript dumps one line per snapshot so the narration script can
// be checked against what the video actually shows.
func writeTranscript(path string, res *Result) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "job %s | %s | %s\n", res.JobID, res.Category.Category, res.Kind)
	for _, snap := range res.Snapshots {
		op := "-"
		if snap.Op != nil {
			op = snap.Op.String()
		}
		fmt.Fprintf(&sb, "step %d: %s | %s | %s\n", snap.Index, op, snap.Diagnostic, snap.State.Summary())
	}
	return os.WriteFile(path, []byte(sb.String()), 0644)
}

func (p *Pipeline) reportStats(res *Result, frameCount int, total, renderTime, encodeTime time.Duration) {
	host := system.CollectResources()
	fps := float64(frameCount) / total.Seconds()

	report := fmt.Sprintf(
		"--- [PERFORMANCE REPORT] ---\n"+
			"Build: %s\n"+
			"Host: %s\n"+
			"Frames: %d\n"+
			"Total Time: %.2fs\n"+
			"Rendering (CPU): %.2fs\n"+
			"Encoding (GPU/CPU): %.2fs\n"+
			"Effective FPS: %.2f\n"+
			"----------------------------\n",
		p.Config.BuildVersion, host, frameCount, total.Seconds(), renderTime.Seconds(), encodeTime.Seconds(), fps,
	)
	fmt.Print(report)

	// Логирование в файл
	logEntry := fmt.Sprintf("[%s] Build: %s | Input: %s | Job: %s | Kind: %s | Frames: %d | Total: %.2fs | Render: %.2fs | Encode: %.2fs | FPS: %.2f | %s\n",
		time.Now().Format("2006-01-02 15:04:05"),
		p.Config.BuildVersion,
		filepath.Base(p.Config.InputPath),
		res.JobID,
		res.Kind,
		frameCount,
		total.Seconds(),
		renderTime.Seconds(),
		encodeTime.Seconds(),
		fps,
		host,
	)

	f, err := os.OpenFile("benchmark.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err == nil {
		f.WriteString(logEntry)
		f.Close()
	} else {
		fmt.Printf("[!] Не удалось записать benchmark.log: %v\n", err)
	}
}
