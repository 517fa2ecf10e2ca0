package render

// PlotSeries exposes plotSeries for tests.
var PlotSeries = plotSeries
