package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/denisAlshanov/clipgrab/internal/config"
	"github.com/denisAlshanov/clipgrab/internal/models"
	"github.com/denisAlshanov/clipgrab/internal/services/downloader"
	"github.com/denisAlshanov/clipgrab/internal/services/rapidapi"
	"github.com/denisAlshanov/clipgrab/internal/services/youtube"
)

func main() {
	fmt.Println("Metadata Source Test")
	fmt.Println("====================")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	link := "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
	if len(os.Args) > 1 {
		link = os.Args[1]
	}

	var source youtube.MetadataSource
	switch cfg.Metadata.Provider {
	case config.ProviderYouTube:
		source = youtube.NewClient(cfg.RapidAPI.Timeout)
	default:
		if !cfg.RapidAPI.Configured() {
			fmt.Println("RAPIDAPI_KEY not set - requests will fail with a configuration error")
			fmt.Println("Set METADATA_PROVIDER=youtube to query YouTube directly")
		}
		source = rapidapi.NewClient(cfg.RapidAPI)
	}

	fmt.Printf("Source: %s\n", source.Name())
	fmt.Printf("Link: %s\n", link)
	fmt.Println()

	resolver := downloader.NewDownloader(source)
	ctx := context.Background()

	for _, downloadType := range []models.DownloadType{
		models.DownloadTypeVideoAudio,
		models.DownloadTypeVideoOnly,
		models.DownloadTypeAudioOnly,
	} {
		result, err := resolver.Resolve(ctx, &models.DownloadRequest{
			URL:          link,
			DownloadType: downloadType,
			Quality:      models.QualityAuto,
		})
		if err != nil {
			fmt.Printf("%s: failed: %v\n", downloadType, err)
			continue
		}
		fmt.Printf("%s: %s\n", downloadType, result.FileName)
		if result.Warning != "" {
			fmt.Printf("  warning: %s\n", result.Warning)
		}
	}
}
