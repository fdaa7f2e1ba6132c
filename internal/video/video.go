package video

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"os/exec"

	"github.com/ivlev/note2video/internal/system"
)

// ErrEncodeFailure wraps every ffmpeg-related error, keeping the encoder
// output attached for diagnosis.
var ErrEncodeFailure = errors.New("video encode failed")

// FrameSpec is one rendered frame and how long it stays on screen.
type FrameSpec struct {
	Index int
	Image *image.RGBA
	Hold  float64
}

// Job describes one complete assembly: ordered frames, timing, optional
// narration track and encoder settings.
type Job struct {
	ID            string
	Frames        []FrameSpec
	FPS           int
	Width         int
	Height        int
	AudioPath     string
	AudioDuration float64
	OutputPath    string
	Encoder       string
	Quality       int
}

// Assembler encodes a job into an mp4 file.
type Assembler interface {
	Assemble(ctx context.Context, job Job) error
}

// FFmpegAssembler streams raw RGBA frames into a single ffmpeg process.
// Frame images are returned to the shared pool as soon as they are written.
type FFmpegAssembler struct{}

func (a *FFmpegAssembler) Assemble(ctx context.Context, job Job) error {
	if len(job.Frames) == 0 {
		return fmt.Errorf("%w: job %s has no frames", ErrEncodeFailure, job.ID)
	}
	if job.FPS <= 0 {
		return fmt.Errorf("%w: job %s has fps %d", ErrEncodeFailure, job.ID, job.FPS)
	}
	for _, f := range job.Frames {
		if f.Image == nil || f.Image.Rect.Dx() != job.Width || f.Image.Rect.Dy() != job.Height {
			return fmt.Errorf("%w: frame %d does not match %dx%d", ErrEncodeFailure, f.Index, job.Width, job.Height)
		}
	}

	holds := make([]float64, len(job.Frames))
	for i, f := range job.Frames {
		holds[i] = f.Hold
	}
	repeats := ExpandPlan(holds, job.FPS, job.AudioDuration)

	// Пишем во временный файл и переименовываем только после успешного
	// завершения, чтобы не оставлять битый mp4.
	partPath := job.OutputPath + ".part"
	args := a.buildFFmpegArgs(job, partPath)

	cmd := exec.CommandContext(ctx, "ffmpeg", args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("%w: stdin pipe: %v", ErrEncodeFailure, err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: ffmpeg start: %v", ErrEncodeFailure, err)
	}

	writeErr := func() error {
		defer stdin.Close()
		for i, f := range job.Frames {
			for n := 0; n < repeats[i]; n++ {
				if _, err := stdin.Write(f.Image.Pix); err != nil {
					return err
				}
			}
			system.PutImage(f.Image)
			job.Frames[i].Image = nil
		}
		return nil
	}()

	if err := cmd.Wait(); err != nil {
		os.Remove(partPath)
		return fmt.Errorf("%w: ffmpeg: %v, output: %s", ErrEncodeFailure, err, stderr.String())
	}
	if writeErr != nil {
		os.Remove(partPath)
		return fmt.Errorf("%w: write frames: %v", ErrEncodeFailure, writeErr)
	}

	if err := os.Rename(partPath, job.OutputPath); err != nil {
		os.Remove(partPath)
		return fmt.Errorf("%w: finalize: %v", ErrEncodeFailure, err)
	}
	return nil
}

func (a *FFmpegAssembler) buildFFmpegArgs(job Job, outPath string) []string {
	args := []string{
		"-y",
		"-f", "rawvideo",
		"-pixel_format", "rgba",
		"-video_size", fmt.Sprintf("%dx%d", job.Width, job.Height),
		"-framerate", fmt.Sprintf("%d", job.FPS),
		"-i", "-",
	}

	if job.AudioPath != "" {
		// Звук короче видео допустим: дорожка просто заканчивается
		// раньше, поэтому -shortest не используется.
		args = append(args, "-i", job.AudioPath,
			"-map", "0:v", "-map", "1:a",
			"-c:a", "aac", "-b:a", "192k")
	}

	args = append(args, "-pix_fmt", "yuv420p", "-c:v", job.Encoder)

	// Качество в зависимости от энкодера
	switch job.Encoder {
	case "h264_videotoolbox":
		bitrate := job.Quality * 100
		args = append(args, "-b:v", fmt.Sprintf("%dk", bitrate))
	case "h264_nvenc":
		args = append(args, "-cq", fmt.Sprintf("%d", job.Quality))
	default: // libx264
		args = append(args, "-crf", fmt.Sprintf("%d", job.Quality), "-preset", "medium")
	}

	args = append(args, "-f", "mp4", outPath)
	return args
}
