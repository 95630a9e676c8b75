package services

import (
	"bytes"
	"context"
	"fmt"
	"image/color"
	"math/rand"
	"os"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/veraroam/ambassador-backend/internal/logger"
	"github.com/veraroam/ambassador-backend/internal/types"
)

// AvatarService renders an initials placeholder for delegated sign-ins
// whose provider profile has no picture.
type AvatarService interface {
	CreateAndUploadAvatar(ctx context.Context, name string) (*types.AssetRef, error)
}

type avatarService struct {
	log      *logger.Logger
	media    MediaService
	bgColors []color.NRGBA
	fontFace font.Face
}

func NewAvatarService(log *logger.Logger, media MediaService) (AvatarService, error) {
	serviceLog := log.With("service", "AvatarService")

	fontPath := os.Getenv("AVATAR_FONT")
	if strings.TrimSpace(fontPath) == "" {
		return nil, fmt.Errorf("env var AVATAR_FONT is empty")
	}
	face, err := loadFontFace(fontPath, 206)
	if err != nil {
		return nil, fmt.Errorf("could not load avatar font: %w", err)
	}

	return &avatarService{
		log:   serviceLog,
		media: media,
		bgColors: []color.NRGBA{
			{R: 0x2E, G: 0x86, B: 0xAB, A: 0xFF},
			{R: 0xF2, G: 0x6C, B: 0x4F, A: 0xFF},
			{R: 0x4C, G: 0x95, B: 0x6B, A: 0xFF},
			{R: 0x8D, G: 0x5A, B: 0x97, A: 0xFF},
			{R: 0xC9, G: 0xA2, B: 0x27, A: 0xFF},
		},
		fontFace: face,
	}, nil
}

func (as *avatarService) CreateAndUploadAvatar(ctx context.Context, name string) (*types.AssetRef, error) {
	buf, err := as.renderAvatar(name)
	if err != nil {
		return nil, err
	}
	ref, err := as.media.Upload(ctx, bytes.NewReader(buf.Bytes()), "image/png", "avatars")
	if err != nil {
		return nil, fmt.Errorf("failed to upload avatar: %w", err)
	}
	return ref, nil
}

func (as *avatarService) renderAvatar(name string) (bytes.Buffer, error) {
	const size = 512
	var buf bytes.Buffer

	dc := gg.NewContext(size, size)

	dc.DrawCircle(float64(size)/2, float64(size)/2, float64(size)/2)
	dc.Clip()

	base := as.bgColors[rand.Intn(len(as.bgColors))]
	dc.SetColor(base)
	dc.DrawRectangle(0, 0, float64(size), float64(size))
	dc.Fill()

	initials := computeInitials(name)
	dc.SetFontFace(as.fontFace)
	tw, th := dc.MeasureString(initials)
	cx, cy := float64(size)/2, float64(size)/2

	dc.SetColor(color.White)
	dc.DrawString(initials, cx-(tw/2)+5, cy+(th/2)-10)

	if err := dc.EncodePNG(&buf); err != nil {
		return buf, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf, nil
}

func computeInitials(name string) string {
	parts := strings.Fields(strings.TrimSpace(name))
	if len(parts) == 0 {
		return "?"
	}
	first := strings.ToUpper(parts[0][:1])
	if len(parts) == 1 {
		return first
	}
	last := strings.ToUpper(parts[len(parts)-1][:1])
	return first + last
}

func loadFontFace(fontPath string, size float64) (font.Face, error) {
	fontBytes, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file: %w", err)
	}
	parsedFont, err := truetype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TTF: %w", err)
	}
	face := truetype.NewFace(parsedFont, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	return face, nil
}
