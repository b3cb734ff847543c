package logger

var WriterFor = writerFor
