package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teripangijo/absen-ppnpn/internal/config"
	dbpkg "github.com/teripangijo/absen-ppnpn/internal/db"
	"github.com/teripangijo/absen-ppnpn/internal/importer"
)

func main() {
	var file string

	rootCmd := &cobra.Command{
		Use:   "importpegawai",
		Short: "Impor/rekonsiliasi roster pegawai dari file Excel",
		Long: "Membaca spreadsheet roster (kolom 'Nama Pegawai' dan 'Jabatan'), lalu " +
			"menambah pegawai baru, memperbarui jabatan yang berubah, mengaktifkan " +
			"kembali yang muncul lagi, dan menonaktifkan yang hilang dari roster.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			db := dbpkg.NewDB(cfg)

			svc := importer.New(db)
			summary, err := svc.Run(cmd.Context(), file)
			if err != nil {
				return err
			}

			fmt.Println("--- Ringkasan Import/Update ---")
			fmt.Printf("Pegawai baru ditambahkan  : %d\n", summary.Added)
			fmt.Printf("Jabatan diperbarui        : %d\n", summary.Updated)
			fmt.Printf("Diaktifkan kembali        : %d\n", summary.Reactivated)
			fmt.Printf("Dinonaktifkan             : %d\n", summary.Deactivated)
			fmt.Printf("Baris dilewati            : %d\n", summary.Skipped)
			return nil
		},
	}

	rootCmd.Flags().StringVarP(&file, "file", "f", "daftar_pegawai.xlsx", "path file Excel roster")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
