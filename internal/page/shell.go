package page

// DefaultShell is the page used when no shell file is configured. It holds
// every mount point the sections write into, the menu toggle, and the
// section anchors the navigation links point at.
const DefaultShell = `<!DOCTYPE html>
<html lang="vi">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Profile</title>
  <link rel="stylesheet" href="style.css">
</head>
<body>
  <header class="header">
    <nav class="navbar container">
      <div class="logo" id="logo"></div>
      <ul class="nav-menu" id="navMenu"></ul>
      <button class="hamburger" id="hamburger" aria-label="Menu">
        <span></span><span></span><span></span>
      </button>
    </nav>
  </header>

  <main>
    <section class="hero" id="hero">
      <div class="container hero-noidung" id="heroNoidung"></div>
    </section>

    <section class="skills" id="skills">
      <div class="container">
        <h2 class="section-title">Skills</h2>
        <div class="skills-grid" id="skillsGrid"></div>
      </div>
    </section>

    <section class="projects" id="projects">
      <div class="container">
        <h2 class="section-title">Projects</h2>
        <div class="projects-list" id="projectsList"></div>
      </div>
    </section>
  </main>

  <footer class="footer" id="footer">
    <div class="container footer-noidung" id="footerNoidung"></div>
  </footer>

  <script src="script.js"></script>
</body>
</html>
`
