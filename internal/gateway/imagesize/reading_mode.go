package imagesize

import (
	"github.com/darkkaiser/manga-gateway/internal/gateway/model"
)

// ReadingMode 크기를 아는 이미지 중 높이가 minHeight 이상인 비율이 ratio 이상이면 세로 스크롤(strip),
// 아니면 페이지 넘김(paged)으로 판정합니다. 크기를 아는 이미지가 없으면 paged입니다.
func ReadingMode(dims []model.ImageDimension, minHeight int, ratio float64) model.ReadingMode {
	known, tall := 0, 0
	for _, d := range dims {
		if !d.Known() {
			continue
		}
		known++
		if d.Height >= minHeight {
			tall++
		}
	}

	if known == 0 {
		return model.ReadingModePaged
	}
	if float64(tall)/float64(known) >= ratio {
		return model.ReadingModeStrip
	}
	return model.ReadingModePaged
}
