package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	serverURL string
	rootCmd   = &cobra.Command{
		Use:   "mediagrab",
		Short: "Mediagrab CLI - metadata lookup and media download client",
		Long:  `A command-line client for the mediagrab server: inspect media links and download video, audio, thumbnails or image albums.`,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "Server URL")

	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(grabCmd)
	rootCmd.AddCommand(albumCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(historyCmd)
}

var infoCmd = &cobra.Command{
	Use:   "info [url]",
	Short: "Look up normalized metadata for a media link",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		resp, err := http.Get(serverURL + "/info?url=" + url.QueryEscape(args[0]))
		if err != nil {
			fatal("Failed to contact server: %v", err)
		}
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		if resp.StatusCode != http.StatusOK {
			fatal("Server error (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
		}

		var item struct {
			Title    string  `json:"title"`
			Author   string  `json:"author"`
			Duration float64 `json:"duration"`
			Type     string  `json:"type"`
			Entries  []struct {
				Title string `json:"title"`
				URL   string `json:"url"`
			} `json:"entries"`
		}
		if err := json.Unmarshal(body, &item); err != nil {
			fatal("Unparseable response: %v", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "Title:\t%s\n", item.Title)
		fmt.Fprintf(w, "Author:\t%s\n", item.Author)
		fmt.Fprintf(w, "Type:\t%s\n", item.Type)
		if item.Duration > 0 {
			fmt.Fprintf(w, "Duration:\t%.0fs\n", item.Duration)
		}
		w.Flush()

		if len(item.Entries) > 0 {
			fmt.Printf("\nEntries (%d):\n", len(item.Entries))
			for i, entry := range item.Entries {
				fmt.Printf("  %2d. %s\n", i+1, entry.Title)
			}
		}
	},
}

var grabCmd = &cobra.Command{
	Use:   "grab [url]",
	Short: "Download a single item",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		kind, _ := cmd.Flags().GetString("type")
		out, _ := cmd.Flags().GetString("output")

		endpoint := serverURL + "/download?url=" + url.QueryEscape(args[0]) + "&type=" + url.QueryEscape(kind)
		saveAttachment(endpoint, out)
	},
}

var albumCmd = &cobra.Command{
	Use:   "album [url...]",
	Short: "Download several items bundled into one archive",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		kind, _ := cmd.Flags().GetString("type")
		out, _ := cmd.Flags().GetString("output")

		params := url.Values{}
		for _, u := range args {
			params.Add("urls", u)
		}
		params.Set("type", kind)
		saveAttachment(serverURL+"/download_album?"+params.Encode(), out)
	},
}

var progressCmd = &cobra.Command{
	Use:   "progress [id]",
	Short: "Show best-effort progress for a download id",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		resp, err := http.Get(serverURL + "/progress/" + url.PathEscape(args[0]))
		if err != nil {
			fatal("Failed to contact server: %v", err)
		}
		defer resp.Body.Close()

		var snapshot struct {
			Percent float64 `json:"percent"`
			Status  string  `json:"status"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
			fatal("Unparseable response: %v", err)
		}
		fmt.Printf("%s (%.0f%%)\n", snapshot.Status, snapshot.Percent)
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent downloads recorded by the server",
	Run: func(cmd *cobra.Command, args []string) {
		resp, err := http.Get(serverURL + "/api/v1/history")
		if err != nil {
			fatal("Failed to contact server: %v", err)
		}
		defer resp.Body.Close()

		var records []struct {
			URL      string `json:"url"`
			Kind     string `json:"kind"`
			Status   string `json:"status"`
			FileName string `json:"file_name"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
			fatal("Unparseable response: %v", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "STATUS\tKIND\tFILE\tURL")
		for _, r := range records {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Status, r.Kind, r.FileName, r.URL)
		}
		w.Flush()
	},
}

func init() {
	grabCmd.Flags().StringP("type", "t", "video", "Media kind: video, audio, thumbnail, image")
	grabCmd.Flags().StringP("output", "o", "", "Output filename (default: server-provided name)")
	albumCmd.Flags().StringP("type", "t", "video", "Media kind: video, audio, image")
	albumCmd.Flags().StringP("output", "o", "", "Output filename (default: server-provided name)")
}

// saveAttachment downloads an attachment response to disk
func saveAttachment(endpoint, out string) {
	resp, err := http.Get(endpoint)
	if err != nil {
		fatal("Failed to contact server: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		fatal("Server error (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	name := out
	if name == "" {
		name = attachmentName(resp.Header.Get("Content-Disposition"))
	}
	if name == "" {
		name = "download"
	}

	file, err := os.Create(name)
	if err != nil {
		fatal("Failed to create %s: %v", name, err)
	}
	defer file.Close()

	n, err := io.Copy(file, resp.Body)
	if err != nil {
		fatal("Failed to save %s: %v", name, err)
	}
	fmt.Printf("Saved %s (%d bytes)\n", name, n)
}

// attachmentName extracts the filename from a Content-Disposition header
func attachmentName(disposition string) string {
	const marker = "filename="
	idx := strings.Index(disposition, marker)
	if idx < 0 {
		return ""
	}
	name := disposition[idx+len(marker):]
	name = strings.Trim(name, `"`)
	if i := strings.Index(name, ";"); i >= 0 {
		name = strings.Trim(name[:i], `"`)
	}
	return name
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
