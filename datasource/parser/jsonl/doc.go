// Package jsonl reads JSON Lines data into Pages, and writes Pages back out as JSON Lines. This parser uses https://github.com/tidwall/gjson to process data, and supports column names formatted as gjson paths.
package jsonl
