/*
Copyright © 2025 Ambor <saltbo@foxmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eslsoft/prepbot/internal/adapter/airtable"
	"github.com/eslsoft/prepbot/internal/infrastructure/config"
	"github.com/eslsoft/prepbot/internal/infrastructure/logging"
	"github.com/eslsoft/prepbot/internal/usecase"
)

// vocabCmd loads the vocabulary once and reports what the bot would serve,
// optionally dumping the normalized entries as NDJSON.
var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "加载并检查词库，支持导出 NDJSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("加载配置失败: %w", err)
		}
		if err := cfg.ValidateSource(); err != nil {
			return err
		}

		logger, err := logging.NewLogger(cfg)
		if err != nil {
			return err
		}

		source := airtable.NewSource(cfg.Airtable.APIKey, cfg.Airtable.BaseID, cfg.Airtable.Table)
		loader := usecase.NewVocabLoader(source, logger)

		entries, report := loader.Load(cmd.Context())
		if report.FetchFailed {
			logger.Warn("数据源不可用，输出内置词库")
		}

		if output == "" {
			return nil
		}

		out := os.Stdout
		if output != "-" {
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("创建输出文件失败: %w", err)
			}
			defer f.Close()
			out = f
		}

		enc := json.NewEncoder(out)
		for _, entry := range entries {
			if err := enc.Encode(entry); err != nil {
				return fmt.Errorf("导出条目失败: %w", err)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(vocabCmd)

	vocabCmd.Flags().StringP("output", "o", "", "NDJSON 输出路径，- 表示标准输出")
}
