package config

// SampleConfig returns a fully commented sample configuration file
func SampleConfig() string {
	return `# simcheck configuration file
version: "1.0"

# Where submissions are read from.
input:
  # Directory scanned when no path is given on the command line.
  directory: assignments
  # Directory names skipped while scanning.
  exclude_dirs:
    - node_modules
    - .git
    - .svn
    - vendor

# Text normalization settings.
tokenizer:
  # Words to filter in addition to the built-in English stopword list.
  extra_stopwords: []

# Report generation settings.
report:
  # Output format: csv, json, text, or markdown.
  format: csv
  # Destination file for the CSV report.
  output_file: plagiarism_report.csv
  # Pairs scoring strictly above this value are flagged as plagiarized.
  threshold: 0.70

# Terminal output settings.
output:
  # Color mode: auto, always, or never.
  color_mode: auto
  verbose: false
`
}

// MinimalSampleConfig returns a compact sample configuration file
func MinimalSampleConfig() string {
	return `version: "1.0"
input:
  directory: assignments
report:
  format: csv
  threshold: 0.70
`
}
