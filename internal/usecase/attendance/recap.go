package attendance

import (
	"context"

	domain "github.com/teripangijo/absen-ppnpn/internal/domain/attendance"
	"github.com/teripangijo/absen-ppnpn/internal/dto"
)

// ListRecap membaca join absensi-pegawai untuk layar rekap dan export.
// Murni baca; filter sudah di-resolve handler ke window waktu.
type ListRecap struct {
	repo domain.Repository
}

func NewListRecap(repo domain.Repository) *ListRecap {
	return &ListRecap{repo: repo}
}

func (uc *ListRecap) Execute(
	ctx context.Context,
	filter domain.RecapFilter,
) ([]dto.RecapRow, error) {
	return uc.repo.ListRecap(ctx, filter)
}
