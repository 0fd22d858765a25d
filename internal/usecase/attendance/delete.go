package attendance

import (
	"context"
	"fmt"

	"github.com/teripangijo/absen-ppnpn/internal/audit"
	domain "github.com/teripangijo/absen-ppnpn/internal/domain/attendance"
	"github.com/teripangijo/absen-ppnpn/internal/httperr"
)

type DeleteAttendance struct {
	repo domain.Repository
}

func NewDeleteAttendance(repo domain.Repository) *DeleteAttendance {
	return &DeleteAttendance{repo: repo}
}

// Execute menghapus satu record absensi dan menulis audit log-nya dalam
// satu transaksi. Record yang tidak ada dilaporkan sebagai
// attendance_not_found tanpa baris audit.
func (uc *DeleteAttendance) Execute(
	ctx context.Context,
	adminUser string,
	attendanceID uint,
) error {

	att, err := uc.repo.GetAttendanceByID(ctx, attendanceID)
	if err != nil {
		return httperr.ErrBusinessMsg(
			"attendance_not_found",
			"Data absensi tidak ditemukan.",
		)
	}

	employeeName := fmt.Sprintf("pegawai ID %d", att.EmployeeID)
	if emp, err := uc.repo.GetEmployeeByID(ctx, att.EmployeeID); err == nil {
		employeeName = emp.Name
	}

	logEntry := audit.Entry(
		adminUser,
		audit.ActionDelete,
		audit.EntityAttendance,
		&att.ID,
		fmt.Sprintf(
			"Hapus absensi %s milik %s pada %s",
			domain.Kind(att.Type).Label(),
			employeeName,
			att.Timestamp.Format("2006-01-02 15:04:05"),
		),
	)

	return uc.repo.DeleteAttendance(ctx, att, logEntry)
}
