package cmd

import (
	"github.com/spf13/cobra"
	"github.com/warm3snow/gnureadline/internal/completion"
	"github.com/warm3snow/gnureadline/internal/logging"
	"go.uber.org/zap"
)

// wordsCmd represents the words command
var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Complete dictionary words on TAB",
	Long: `Start an interactive session that completes the current word from
a dictionary file, one word per line. Every line read is added to the
history list and echoed back.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := Config.Completion
		if cmd.Flags().Changed("dict") {
			opts.Dictionary, _ = cmd.Flags().GetString("dict")
		}
		if cmd.Flags().Changed("fuzzy") {
			opts.Fuzzy, _ = cmd.Flags().GetBool("fuzzy")
		}
		if cmd.Flags().Changed("limit") {
			opts.Limit, _ = cmd.Flags().GetInt("limit")
		}

		words, err := completion.LoadWords(opts.Dictionary, completion.WordOptions{
			Fuzzy:     opts.Fuzzy,
			CacheSize: opts.CacheSize,
			Limit:     opts.Limit,
		})
		if err != nil {
			logging.LogError("Failed to load dictionary", err, zap.String("path", opts.Dictionary))
			return err
		}
		logging.Logger.Info("Dictionary loaded", zap.String("path", opts.Dictionary), zap.Int("words", words.Len()))

		registry := completion.NewRegistry()
		registry.RegisterSource(words)
		return runSession(cmd, "Words", registry)
	},
}

func init() {
	rootCmd.AddCommand(wordsCmd)

	// Add flags specific to words
	wordsCmd.Flags().StringP("dict", "d", completion.DefaultDictionary, "dictionary file, one word per line")
	wordsCmd.Flags().BoolP("fuzzy", "f", false, "rank words by fuzzy match instead of prefix")
	wordsCmd.Flags().IntP("limit", "l", 0, "maximum number of candidates offered")
}
