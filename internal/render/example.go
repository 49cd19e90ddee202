package render

import (
	"iter"

	"braces.dev/errtrace"
	"go.abhg.dev/src2html/internal/highlight"
)

// Example is a small HTML document used to preview themes.
const Example = `<!DOCTYPE html>
<html lang="en">
  <head>
    <title>Hello, world!</title>
    <script>
      $(document).ready(function() {
        $("h1").fadeIn("slow");
      });
    </script>
  </head>
  <body>
    <h1>Hello, world!</h1>
  </body>
</html>`

// RenderExample highlights [Example].
func (s *Service) RenderExample() (iter.Seq[highlight.Event], error) {
	events, err := s.Render("text/html", Example)
	return events, errtrace.Wrap(err)
}
