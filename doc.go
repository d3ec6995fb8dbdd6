// Package gradviz turns a gradient-field dump into a single static figure.
//
// 🚀 What does gradviz do?
//
//	Given a text table of (x, y, dx, dy, magnitude) rows, typically
//	written by a global placer, it draws:
//		• a density heatmap of positions (2D histogram, hot colour map)
//		• a scatter of the positions themselves
//		• a quiver of unit gradient directions coloured by magnitude
//	plus a colorbar for each colour-mapped layer, and saves the result.
//
// Under the hood:
//
//	field/     - table reader/writer, bounds, unit normalisation, summary
//	histogram/ - dense 2D binning over the data's min/max (plotter.GridXYZ)
//	render/    - gonum/plot composition, colour maps, quiver plotter, encoders
//	config/    - defaults + YAML file + flags
//	pipeline/  - load → compute → plot → save
//	synth/     - synthetic density-penalty fields for demos and tests
//	cmd/gradviz - the CLI
//
//	go install github.com/katalvlaran/gradviz/cmd/gradviz@latest
//	gradviz -i grad_vectors.txt -o full_visualization.png
package gradviz
