package main

import (
	"encoding/json"
	"fmt"

	"github.com/darkkaiser/manga-gateway/internal/pkg/version"
	"github.com/spf13/cobra"
)

func newVersionCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "빌드 버전 정보를 출력합니다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.Get()

			if !asJSON {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), info.String())
				return err
			}

			b, err := json.MarshalIndent(info.ToMap(), "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "JSON 형식으로 출력")

	return cmd
}
