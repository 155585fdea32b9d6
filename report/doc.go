// Package report renders beliefs, value tables, simulated trials and
// summaries as text, and solver convergence and trial costs as HTML charts.
//
// Text output is optionally coloured with aurora; pass colour=false for
// plain output (logs, files, tests). Charts are self-contained go-echarts
// pages written to any io.Writer.
package report
