package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ivlev/note2video/internal/config"
	"github.com/ivlev/note2video/internal/engine"
	"github.com/ivlev/note2video/internal/render"
	"github.com/ivlev/note2video/internal/source"
	"github.com/ivlev/note2video/internal/system"
	"github.com/ivlev/note2video/internal/video"
)

var buildVersion = "dev"

func main() {
	// Увеличиваем лимиты системы (для macOS/Linux)
	system.InitResourceLimits()

	// Создаем нужные директории, если их нет
	dirs := []string{"input/audio", "input/notes", "output"}
	for _, d := range dirs {
		os.MkdirAll(d, 0755)
	}

	defaults := config.Default()

	inputPtr := flag.String("input", "", "Путь к заметке .txt/.md/.pdf (по умолчанию: самый свежий файл в input/notes/)")
	outputPtr := flag.String("output", "", "Путь к видео (если пусто, генерируется автоматически в output/)")
	widthPtr := flag.Int("width", defaults.Width, "Ширина")
	heightPtr := flag.Int("height", defaults.Height, "Высота")
	fpsPtr := flag.Int("fps", defaults.FPS, "FPS")
	workersPtr := flag.Int("workers", system.DefaultWorkers(), "Потоки рендеринга")
	preHoldPtr := flag.Float64("pre-hold", defaults.PreHold, "Пауза перед операцией (сек)")
	postHoldPtr := flag.Float64("post-hold", defaults.PostHold, "Пауза после операции (сек)")
	introHoldPtr := flag.Float64("intro-hold", defaults.IntroHold, "Длительность вступительного кадра (сек)")
	outroHoldPtr := flag.Float64("outro-hold", defaults.OutroHold, "Длительность финального кадра (сек)")
	audioPtr := flag.String("audio", "", "Путь к дорожке озвучки (по умолчанию: самый свежий файл в input/audio/)")
	audioSyncPtr := flag.Bool("audio-sync", true, "Продлевать финальный кадр до конца озвучки")
	noAudioPtr := flag.Bool("no-audio", false, "Собрать видео без звука, даже если в input/audio/ есть файлы")
	qrLinkPtr := flag.String("qr-link", "", "URL для QR-кода на финальном кадре")
	qualityPtr := flag.Int("quality", 0, "Качество видео (0 - авто, x264: CRF 1-51, VideoToolbox: битрейт = Q*100кбит/с)")
	profilePtr := flag.String("profile", "", "YAML-профиль таймингов и словаря классификатора")
	statsPtr := flag.Bool("stats", false, "Показать отчет о производительности и записать benchmark.log")

	flag.Parse()

	inputPath := *inputPtr
	if inputPath == "" {
		latest, err := system.FindLatestNote("input/notes")
		if err != nil {
			log.Fatalf("[-] Ошибка: %v. Положите заметку в input/notes/", err)
		}
		inputPath = latest
		fmt.Printf("[*] Выбран файл: %s\n", inputPath)
	}

	src, err := source.Open(inputPath)
	if err != nil {
		log.Fatalf("[-] Ошибка инициализации источника: %v", err)
	}
	text, err := src.Text()
	src.Close()
	if err != nil {
		log.Fatalf("[-] Ошибка чтения заметки: %v", err)
	}
	if strings.TrimSpace(text) == "" {
		log.Fatalf("[-] Ошибка: заметка %s пуста", inputPath)
	}

	// Обработка аудио
	audioPath := *audioPtr
	if audioPath == "" && !*noAudioPtr {
		latest, err := system.FindLatestAudio("input/audio")
		if err == nil {
			audioPath = latest
			fmt.Printf("[*] Выбрано аудио: %s\n", audioPath)
		}
	}
	if *noAudioPtr {
		audioPath = ""
	}

	finalOutput := *outputPtr
	if finalOutput == "" {
		baseName := filepath.Base(inputPath)
		nameOnly := strings.TrimSuffix(baseName, filepath.Ext(baseName))
		cleanName := strings.ReplaceAll(nameOnly, " ", "_")
		timestamp := time.Now().Format("2006-01-02_15-04-05")
		finalOutput = filepath.Join("output", fmt.Sprintf("%s_%s.mp4", cleanName, timestamp))
	}

	encoderName, _ := system.GetBestH264Encoder()
	if encoderName != "libx264" {
		fmt.Printf("[*] Обнаружено аппаратное ускорение: %s\n", encoderName)
	}

	quality := *qualityPtr
	if quality == 0 {
		switch encoderName {
		case "h264_videotoolbox":
			quality = 75 // Хорошее качество для VideoToolbox
		case "h264_nvenc":
			quality = 28 // Эквивалент CRF для NVENC
		default:
			quality = 23 // Стандартный CRF для x264
		}
	}

	cfg := &config.Config{
		InputPath:    inputPath,
		OutputVideo:  finalOutput,
		Width:        *widthPtr,
		Height:       *heightPtr,
		FPS:          *fpsPtr,
		Workers:      *workersPtr,
		PreHold:      *preHoldPtr,
		PostHold:     *postHoldPtr,
		IntroHold:    *introHoldPtr,
		OutroHold:    *outroHoldPtr,
		AudioPath:    audioPath,
		AudioSync:    *audioSyncPtr,
		VideoEncoder: encoderName,
		Quality:      quality,
		QRLink:       *qrLinkPtr,
		ShowStats:    *statsPtr,
		BuildVersion: buildVersion,
		ProfilePath:  *profilePtr,
	}

	pipeline := engine.NewPipeline(cfg, render.NewStyleCache(), &video.FFmpegAssembler{})

	if cfg.ProfilePath != "" {
		profile, err := config.ReadProfile(cfg.ProfilePath)
		if err != nil {
			log.Fatalf("[-] Ошибка чтения профиля: %v", err)
		}
		profile.Apply(cfg)
		pipeline.Table = profile.Table()
		fmt.Printf("[*] Используется профиль: %s\n", cfg.ProfilePath)
	}

	if _, err := pipeline.Run(context.Background(), text); err != nil {
		log.Fatalf("[-] Ошибка проекта: %v", err)
	}
}
