// Package fuzztests houses Go fuzz harnesses for the newt front end
// (source -> lexer -> parser -> module -> IR). They guard against panics,
// hangs and broken span invariants on arbitrary input.
//
// Назначение: загружать байты в FileSet и прогонять их через все фазы.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
